package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/skybook/skybook/internal/catalog"
	"github.com/skybook/skybook/internal/handler"
	"github.com/skybook/skybook/internal/ratelimit"
	"github.com/skybook/skybook/internal/search"
	"github.com/skybook/skybook/internal/session"
)

type Config struct {
	Port         string
	SearchDelay  time.Duration
	RedisEnabled bool
	RedisHost    string
	RedisPort    string
	SearchRPS    float64
	SearchBurst  int
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	var sessionStore session.Store
	if cfg.RedisEnabled {
		redisStore, err := session.NewRedisStore(session.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		sessionStore = redisStore
		log.Printf("Redis session store enabled (host: %s:%s)", cfg.RedisHost, cfg.RedisPort)
	} else {
		sessionStore = session.NewMemoryStore()
		log.Println("Redis disabled, sessions held in memory only")
	}
	defer sessionStore.Close()

	searchService := search.NewService(catalog.New(cfg.SearchDelay))
	limiter := ratelimit.NewClientLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.SearchRPS,
		BurstSize:         cfg.SearchBurst,
	})

	searchHandler := handler.NewSearchHandler(searchService)
	authHandler := handler.NewAuthHandler(sessionStore)

	api := e.Group("/api/v1")
	api.GET("/flights", searchHandler.ListFlights)
	api.POST("/flights/search", searchHandler.Search, handler.RateLimit(limiter))
	api.POST("/bookings", searchHandler.Book)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.GET("/auth/session", authHandler.Session)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/content", handler.ContentHandler)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting SkyBook server on port %s (search delay %v)", cfg.Port, cfg.SearchDelay)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		SearchDelay:  getEnvDuration("SEARCH_DELAY", 500*time.Millisecond),
		RedisEnabled: getEnvBool("SESSION_REDIS_ENABLED", true),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		SearchRPS:    getEnvFloat("SEARCH_RPS", 10),
		SearchBurst:  getEnvInt("SEARCH_BURST", 20),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
