package cache

import (
	"context"
	"fmt"
	"time"

	"courier-dispatch-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisPlanCache implements the PlanCache port on Redis. Plans are cheap to
// recompute, so entries are advisory and TTL-bound; a cache failure is
// surfaced to the caller, who decides whether to plan anyway.
type RedisPlanCache struct {
	client *redis.Client
}

// NewRedisPlanCache connects to redisURL, in the format
// redis://[:password@]host[:port][/database].
func NewRedisPlanCache(redisURL string) (*RedisPlanCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("plan cache: parse redis url: %w", err)
	}

	return &RedisPlanCache{client: redis.NewClient(opts)}, nil
}

// Get returns the cached plan bytes for key, or ports.ErrCacheMiss.
func (r *RedisPlanCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("plan cache: get %q: %w", key, err)
	}
	return val, nil
}

// Set stores plan bytes under key for ttl. A ttl of 0 never expires.
func (r *RedisPlanCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("plan cache: set %q: %w", key, err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (r *RedisPlanCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("plan cache: ping: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisPlanCache) Close() error {
	return r.client.Close()
}
