// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniRedis creates a test Redis server using miniredis.
func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := newRedisCache(client, "", zerolog.Nop())
	t.Cleanup(func() { _ = c.Close() })
	return mr, c
}

func TestRedisCache_SetGet(t *testing.T) {
	ctx := context.Background()
	mr, c := setupMiniRedis(t)

	c.Set(ctx, "videos", []byte(`[{"id":1}]`), 5*time.Minute)

	val, ok := c.Get(ctx, "videos")
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(val))

	// keys are namespaced
	assert.True(t, mr.Exists("vodmeta:videos"))

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Sets)
	assert.Equal(t, 1, stats.CurrentSize)
}

func TestRedisCache_Miss(t *testing.T) {
	_, c := setupMiniRedis(t)

	_, ok := c.Get(context.Background(), "nope")
	assert.False(t, ok)
	assert.Equal(t, int64(1), c.Stats().Misses)
}

func TestRedisCache_Expiration(t *testing.T) {
	ctx := context.Background()
	mr, c := setupMiniRedis(t)

	c.Set(ctx, "k", []byte("v"), time.Second)
	mr.FastForward(2 * time.Second)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()
	_, c := setupMiniRedis(t)

	c.Set(ctx, "k", []byte("v"), time.Minute)
	c.Delete(ctx, "k")

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_ServerDownReadsAsMiss(t *testing.T) {
	ctx := context.Background()
	mr, c := setupMiniRedis(t)

	c.Set(ctx, "k", []byte("v"), time.Minute)
	mr.Close()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Error(t, c.HealthCheck(ctx))
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr}, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewRedisCache_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: mr.Addr(), Prefix: "test:"}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	c.Set(context.Background(), "a", []byte("b"), time.Minute)
	assert.True(t, mr.Exists("test:a"))
}
