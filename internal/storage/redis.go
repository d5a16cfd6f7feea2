package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces tracker keys inside a shared Redis database
const redisKeyPrefix = "jobtracker:"

// Redis is a Store backed by plain Redis string keys.
type Redis struct {
	client *redis.Client
}

// ConnectRedis parses redisURL and verifies connectivity.
func ConnectRedis(ctx context.Context, redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, &Error{Op: "open", Message: "invalid redis URL", Cause: err}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, &Error{Op: "open", Message: "redis ping failed", Cause: err}
	}

	return &Redis{client: client}, nil
}

// Get returns the value stored under key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Message: "GET failed", Cause: err}
	}
	return value, nil
}

// Set stores value under key without expiry.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return &Error{Op: "set", Key: key, Message: "SET failed", Cause: err}
	}
	return nil
}

// Delete removes key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return &Error{Op: "delete", Key: key, Message: "DEL failed", Cause: err}
	}
	return nil
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
