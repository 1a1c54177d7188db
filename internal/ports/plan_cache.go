package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss reports that no cached plan exists for a key.
var ErrCacheMiss = errors.New("plan cache: miss")

// PlanCache stores serialized dispatch plans keyed by a digest of the plan
// inputs. A cache is an optional optimization; planning must work without
// one.
type PlanCache interface {
	// Get returns the cached plan bytes or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores plan bytes under key for ttl (0 means no expiration).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
