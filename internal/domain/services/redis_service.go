package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

// ErrCacheMiss is returned when a key is absent or caching is disabled
var ErrCacheMiss = errors.New("cache miss")

type InterfaceRedisService interface {
	// 1. Get a cached JSON value into dest
	GetJSON(ctx context.Context, key string, dest interface{}) error
	// 2. Cache a value as JSON with a TTL
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// 3. Drop cached keys, used when the underlying data changes
	Invalidate(ctx context.Context, keys ...string) error
	// 4. Close the client
	Close() error
}

// RedisService wraps the Redis client used for aggregate caching. When the
// server is unreachable at startup the service degrades to a no-op cache.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(c *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: c.GetRedisAddr(),
		DB:   c.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warning("Redis unavailable at", c.GetRedisAddr(), ", aggregate caching disabled:", err)
		_ = client.Close()
		return &RedisService{}
	}
	logger.Info("Connected to Redis at", c.GetRedisAddr())
	return &RedisService{client: client}
}

func (s *RedisService) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if s.client == nil {
		return ErrCacheMiss
	}
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, dest)
}

func (s *RedisService) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, ttl).Err()
}

func (s *RedisService) Invalidate(ctx context.Context, keys ...string) error {
	if s.client == nil || len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *RedisService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
