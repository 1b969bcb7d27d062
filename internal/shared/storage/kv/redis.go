package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis instance. Keys are namespaced with a
// prefix so several deployments can share one database.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to Redis and verifies connectivity with a ping.
func NewRedis(ctx context.Context, addr, password, prefix string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &Redis{client: client, prefix: prefix}, nil
}

// Get fetches the value for key.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores the value for key without expiry.
func (r *Redis) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
