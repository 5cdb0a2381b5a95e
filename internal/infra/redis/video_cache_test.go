package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*VideoCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewVideoCache(client, time.Minute), mr
}

func TestVideoCache_MissThenHit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	data, version, err := cache.Get(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, int64(0), version)

	require.NoError(t, cache.Set(ctx, 10, []byte(`{"title":"cats"}`), version))

	data, _, err = cache.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"cats"}`, string(data))
}

func TestVideoCache_FillAfterInvalidateIsDropped(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	// 回源读库前拿到版本号
	_, version, err := cache.Get(ctx, 10)
	require.NoError(t, err)

	// 读库期间有人点赞
	require.NoError(t, cache.Invalidate(ctx, 10))

	require.NoError(t, cache.Set(ctx, 10, []byte(`{"likes":[]}`), version))

	data, newVersion, err := cache.Get(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, data, "stale detail must not be cached")
	assert.Equal(t, version+1, newVersion)

	require.NoError(t, cache.Set(ctx, 10, []byte(`{"likes":["2"]}`), newVersion))
	data, _, err = cache.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, `{"likes":["2"]}`, string(data))
}

func TestVideoCache_InvalidateRemovesEntriesAndSetsTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, []byte("a"), 0))
	require.NoError(t, cache.Set(ctx, 2, []byte("b"), 0))
	assert.Equal(t, time.Minute, mr.TTL(videoKey(1)))

	require.NoError(t, cache.Invalidate(ctx, 1, 2))

	assert.False(t, mr.Exists(videoKey(1)))
	assert.False(t, mr.Exists(videoKey(2)))
	assert.Equal(t, versionTTL, mr.TTL(versionKey(1)))
}

func TestVideoCache_NilClientIsNoop(t *testing.T) {
	cache := NewVideoCache(nil, time.Minute)
	ctx := context.Background()

	data, version, err := cache.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Zero(t, version)
	assert.NoError(t, cache.Set(ctx, 1, []byte("x"), 0))
	assert.NoError(t, cache.Invalidate(ctx, 1))
}
