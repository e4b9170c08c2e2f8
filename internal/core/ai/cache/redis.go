package cache

import (
	"context"
	"fmt"

	"babybites/internal/infrastructure/config"
	"babybites/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs the completion cache with redis, sharing entries across
// instances.
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get returns the cached value for key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", common.ErrCacheDisabled
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return val, nil
}

// Set stores value under key with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close shuts down the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
