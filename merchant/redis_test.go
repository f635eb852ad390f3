package merchant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celopay/celopay-go/types"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewRedisCache(client, ttl), s
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, _ := newRedisCache(t, 0)
	ctx := context.Background()

	got, err := cache.Get(ctx, "0xcafe")
	require.NoError(t, err)
	assert.Nil(t, got)

	want := &types.MerchantProfile{
		Address:   "0xCAFE",
		Name:      "Celo Cafe",
		Farcaster: "@celocafe",
		Verified:  true,
	}
	require.NoError(t, cache.Set(ctx, "0xcafe", want))

	got, err = cache.Get(ctx, "0xcafe")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	cache, s := newRedisCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "0xcafe", profile("cafe")))
	s.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, "0xcafe")
	require.NoError(t, err)
	assert.Nil(t, got, "expired key should return nil")
}

func TestRedisCache_Clear(t *testing.T) {
	cache, _ := newRedisCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "0xa", profile("a")))
	require.NoError(t, cache.Set(ctx, "0xb", profile("b")))
	require.NoError(t, cache.Clear(ctx))

	for _, key := range []string{"0xa", "0xb"} {
		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestRedisCache_WorksBehindDirectory(t *testing.T) {
	cache, _ := newRedisCache(t, 0)
	src := &countingSource{profile: &types.MerchantProfile{Name: "Celo Cafe"}}
	dir := NewDirectory(src, cache, nil, nil)
	ctx := context.Background()

	require.NotNil(t, dir.GetProfile(ctx, "0xCAFE"))
	require.NotNil(t, dir.GetProfile(ctx, "0xcafe"))
	assert.Equal(t, 1, src.calls)
}
