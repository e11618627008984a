package redis

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewCache(NewClientFromRedis(rdb)), mr
}

func TestCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", map[string]string{"name": "Acme"}, time.Minute))

	val, err := cache.Get(ctx, "k")
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(val, &decoded))
	assert.Equal(t, "Acme", decoded["name"])
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), "ontbreekt")
	require.Error(t, err)
	assert.True(t, IsNil(err))
}

func TestCache_GetOrLoadSafe_LoadsOnce(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	var calls atomic.Int32
	loader := func() (interface{}, error) {
		calls.Add(1)
		return map[string]string{"name": "Acme"}, nil
	}

	first, err := cache.GetOrLoadSafe(ctx, "brand:id:x", time.Minute, loader)
	require.NoError(t, err)

	// 第二次命中缓存，loader 不再被调用
	second, err := cache.GetOrLoadSafe(ctx, "brand:id:x", time.Minute, loader)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_GetOrLoadSafe_LoaderError(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.GetOrLoadSafe(context.Background(), "k", time.Minute, func() (interface{}, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)
}

func TestCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, cache.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, cache.Delete(ctx, "a", "b"))

	_, err := cache.Get(ctx, "a")
	assert.True(t, IsNil(err))
}

func TestCache_InvalidatePattern(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "brand:id:1", "a", time.Minute))
	require.NoError(t, cache.Set(ctx, "brand:id:2", "b", time.Minute))
	require.NoError(t, cache.Set(ctx, "ander:3", "c", time.Minute))

	require.NoError(t, cache.InvalidatePattern(ctx, "brand:id:*"))

	_, err := cache.Get(ctx, "brand:id:1")
	assert.True(t, IsNil(err))
	_, err = cache.Get(ctx, "ander:3")
	assert.NoError(t, err)
}

func TestCache_InvalidateBrand(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, cache.Set(ctx, BrandKey(id), "x", time.Minute))
	require.NoError(t, cache.Set(ctx, BrandSlugKey("acme"), "x", time.Minute))

	require.NoError(t, cache.InvalidateBrand(ctx, id, "acme"))

	_, err := cache.Get(ctx, BrandKey(id))
	assert.True(t, IsNil(err))
	_, err = cache.Get(ctx, BrandSlugKey("acme"))
	assert.True(t, IsNil(err))
}

func TestBrandKeys(t *testing.T) {
	id := uuid.MustParse("c0a80101-0000-0000-0000-000000000001")

	assert.Equal(t, "brand:id:c0a80101-0000-0000-0000-000000000001", BrandKey(id))
	assert.Equal(t, "brand:slug:acme", BrandSlugKey("acme"))
}
