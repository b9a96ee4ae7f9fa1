package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skybook/skybook/internal/models"
)

// accountCounterKey persists the number of accounts ever created, so
// sequential ids stay collision-safe across restarts.
const accountCounterKey = "accountCount"

// RedisStore persists the session in redis under SessionKey. Sessions have
// no TTL; they live until logout clears them.
type RedisStore struct {
	client *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
	}
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Restore(ctx context.Context) (*models.UserSession, error) {
	data, err := r.client.Get(ctx, SessionKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s models.UserSession
	if err := json.Unmarshal(data, &s); err != nil {
		// Corrupt or foreign data under the session key is treated as no
		// session rather than an error.
		return nil, nil
	}
	return &s, nil
}

func (r *RedisStore) Set(ctx context.Context, s *models.UserSession) error {
	if s == nil {
		return r.client.Del(ctx, SessionKey).Err()
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, SessionKey, data, 0).Err()
}

func (r *RedisStore) Login(ctx context.Context, name, email string) (*models.UserSession, error) {
	id, err := r.client.Incr(ctx, accountCounterKey).Result()
	if err != nil {
		return nil, err
	}

	s := &models.UserSession{
		ID:    int(id),
		Name:  displayName(name),
		Email: email,
	}
	if err := r.Set(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *RedisStore) Logout(ctx context.Context) error {
	return r.Set(ctx, nil)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
