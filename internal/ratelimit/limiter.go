package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter hands out a token bucket per client key (typically the
// client IP) so one chatty client cannot starve the search endpoint.
type ClientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	config   Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewClientLimiter(config Config) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		config:   config,
	}
}

func (c *ClientLimiter) getLimiter(key string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[key]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists = c.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(c.config.RequestsPerSecond), c.config.BurstSize)
	c.limiters[key] = limiter
	return limiter
}

// Allow reports whether the client may proceed right now.
func (c *ClientLimiter) Allow(key string) bool {
	return c.getLimiter(key).Allow()
}
