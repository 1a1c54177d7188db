package cache

import (
	"context"
	"testing"
	"time"

	"courier-dispatch-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPlanCache_SetGet(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	planCache, err := NewRedisPlanCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer planCache.Close()

	ctx := context.Background()
	value := []byte(`{"shipments":[]}`)

	err = planCache.Set(ctx, "plan:abc", value, 10*time.Second)
	assert.NoError(t, err)

	got, err := planCache.Get(ctx, "plan:abc")
	assert.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestRedisPlanCache_Miss(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	planCache, err := NewRedisPlanCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer planCache.Close()

	_, err = planCache.Get(context.Background(), "plan:absent")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestRedisPlanCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	planCache, err := NewRedisPlanCache("redis://" + mr.Addr())
	require.NoError(t, err)
	defer planCache.Close()

	ctx := context.Background()
	require.NoError(t, planCache.Set(ctx, "plan:ttl", []byte("x"), time.Second))

	mr.FastForward(2 * time.Second)

	_, err = planCache.Get(ctx, "plan:ttl")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestRedisPlanCache_BadURL(t *testing.T) {
	_, err := NewRedisPlanCache("not-a-url")
	assert.Error(t, err)
}
