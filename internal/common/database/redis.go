// internal/common/database/redis.go
package database

import (
	"context"
	"fmt"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the Redis client
type RedisClient struct {
	Client *redis.Client
}

// NewRedis creates a new Redis client
func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisClient{Client: rdb}, nil
}

// ConnectRedis creates a client and waits until the server answers PING.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, backoff Backoff, log logger.Logger) (*RedisClient, error) {
	client, err := NewRedis(cfg)
	if err != nil {
		return nil, err
	}
	err = RetryWithBackoff(ctx, func() error {
		return client.Ping(ctx)
	}, backoff.Attempts, backoff.InitialDelay, log, "Redis connection")
	if err != nil {
		client.Close()
		return nil, err
	}
	log.Info("Redis connected", map[string]interface{}{"address": cfg.Address, "db": cfg.DB})
	return client, nil
}

// Ping tests the Redis connection
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}
