package util

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EivorRrz/restro/api/db"
	"github.com/EivorRrz/restro/api/metrics"
)

func TestRateLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("DeniesAfterLimitWithoutCounting", func(t *testing.T) {
		cache, store, _ := newTestCache(t)
		limiter := NewRateLimiter(cache, 3, time.Minute, metrics.New())

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Check(ctx, "user-1"), "request %d", i+1)
		}
		assert.False(t, limiter.Check(ctx, "user-1"))
		assert.False(t, limiter.Check(ctx, "user-1"))

		raw, err := store.Get(ctx, "rate_limit:user-1")
		require.NoError(t, err)
		assert.Equal(t, "3", string(raw))
	})

	t.Run("IdentitiesAreIndependent", func(t *testing.T) {
		cache, _, _ := newTestCache(t)
		limiter := NewRateLimiter(cache, 1, time.Minute, nil)

		assert.True(t, limiter.Check(ctx, "10.0.0.1"))
		assert.False(t, limiter.Check(ctx, "10.0.0.1"))
		assert.True(t, limiter.Check(ctx, "10.0.0.2"))
	})

	t.Run("WindowIsFixedFromFirstRequest", func(t *testing.T) {
		cache, store, clock := newTestCache(t)
		limiter := NewRateLimiter(cache, 5, time.Minute, nil)

		require.True(t, limiter.Check(ctx, "u"))
		clock.Advance(20 * time.Second)
		require.True(t, limiter.Check(ctx, "u"))

		ttl, err := store.TTL(ctx, "rate_limit:u")
		require.NoError(t, err)
		assert.Equal(t, 40*time.Second, ttl)
	})

	t.Run("SubSecondWindowOnRedis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		cache := NewCacheService(db.NewRedisStoreFromClient(client, "restaurant_app:"))
		limiter := NewRateLimiter(cache, 5, 1500*time.Millisecond, nil)

		require.True(t, limiter.Check(ctx, "u"))
		require.True(t, limiter.Check(ctx, "u"))
		assert.Equal(t, 1500*time.Millisecond, mr.TTL("restaurant_app:rate_limit:u"))

		mr.FastForward(1100 * time.Millisecond)
		require.True(t, limiter.Check(ctx, "u"))
		assert.Equal(t, 400*time.Millisecond, mr.TTL("restaurant_app:rate_limit:u"))
		got, err := mr.Get("restaurant_app:rate_limit:u")
		require.NoError(t, err)
		assert.Equal(t, "3", got)
	})

	t.Run("ResetsAfterWindow", func(t *testing.T) {
		cache, store, clock := newTestCache(t)
		limiter := NewRateLimiter(cache, 2, time.Minute, nil)

		require.True(t, limiter.Check(ctx, "u"))
		require.True(t, limiter.Check(ctx, "u"))
		require.False(t, limiter.Check(ctx, "u"))

		clock.Advance(time.Minute)
		assert.True(t, limiter.Check(ctx, "u"))

		raw, err := store.Get(ctx, "rate_limit:u")
		require.NoError(t, err)
		assert.Equal(t, "1", string(raw))
		ttl, err := store.TTL(ctx, "rate_limit:u")
		require.NoError(t, err)
		assert.Equal(t, time.Minute, ttl)
	})

	t.Run("AllowUsesExplicitLimit", func(t *testing.T) {
		cache, _, _ := newTestCache(t)
		limiter := NewRateLimiter(cache, 100, time.Minute, nil)

		assert.True(t, limiter.Allow(ctx, "login:a@b.c", 1, time.Minute))
		assert.False(t, limiter.Allow(ctx, "login:a@b.c", 1, time.Minute))
	})

	t.Run("DefaultsApply", func(t *testing.T) {
		limiter := NewRateLimiter(NewCacheService(brokenStore{}), 0, 0, nil)
		assert.Equal(t, DefaultRateLimitRequests, limiter.Limit())
		assert.Equal(t, DefaultRateLimitWindow, limiter.Window())
	})

	t.Run("UnavailableCacheAllows", func(t *testing.T) {
		limiter := NewRateLimiter(NewCacheService(brokenStore{}), 1, time.Minute, nil)
		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Check(ctx, "u"))
		}
	})
}
