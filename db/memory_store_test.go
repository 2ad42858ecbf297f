package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("GetSetDelete", func(t *testing.T) {
		s := NewMemoryStore(0)
		defer s.Close()

		_, err := s.Get(ctx, "user:1")
		assert.ErrorIs(t, err, ErrCacheMiss)

		require.NoError(t, s.Set(ctx, "user:1", []byte(`{"id":"1"}`), time.Minute))
		got, err := s.Get(ctx, "user:1")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"1"}`, string(got))

		require.NoError(t, s.Delete(ctx, "user:1", "missing"))
		_, err = s.Get(ctx, "user:1")
		assert.ErrorIs(t, err, ErrCacheMiss)

		// deleting again is a no-op
		assert.NoError(t, s.Delete(ctx, "user:1"))
	})

	t.Run("ExpiresAfterTTL", func(t *testing.T) {
		clock := newFakeClock()
		s := NewMemoryStore(0, WithClock(clock.Now))
		defer s.Close()

		require.NoError(t, s.Set(ctx, "food:1", []byte("x"), 10*time.Second))

		ttl, err := s.TTL(ctx, "food:1")
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, ttl)

		clock.Advance(9 * time.Second)
		ok, err := s.Exists(ctx, "food:1")
		require.NoError(t, err)
		assert.True(t, ok)

		clock.Advance(time.Second)
		ok, err = s.Exists(ctx, "food:1")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.TTL(ctx, "food:1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("TTLWithoutExpiryIsUnknown", func(t *testing.T) {
		s := NewMemoryStore(0)
		defer s.Close()

		require.NoError(t, s.Set(ctx, "k", []byte("v"), 0))
		_, err := s.TTL(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("StoredValueIsCopied", func(t *testing.T) {
		s := NewMemoryStore(0)
		defer s.Close()

		value := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", value, time.Minute))
		value[0] = 'z'

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got))
	})

	t.Run("DeleteByPattern", func(t *testing.T) {
		s := NewMemoryStore(0)
		defer s.Close()

		for _, k := range []string{"foods:all", "foods:category:c1", "food:1", "restaurants:all"} {
			require.NoError(t, s.Set(ctx, k, []byte("v"), time.Minute))
		}

		n, err := s.DeleteByPattern(ctx, "foods:*")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		ok, _ := s.Exists(ctx, "food:1")
		assert.True(t, ok)
		ok, _ = s.Exists(ctx, "restaurants:all")
		assert.True(t, ok)
	})

	t.Run("DeleteByPatternRejectsBadPattern", func(t *testing.T) {
		s := NewMemoryStore(0)
		defer s.Close()

		_, err := s.DeleteByPattern(ctx, "foods:[")
		assert.Error(t, err)
	})

	t.Run("DeleteIndexed", func(t *testing.T) {
		clock := newFakeClock()
		s := NewMemoryStore(0, WithClock(clock.Now))
		defer s.Close()

		require.NoError(t, s.Set(ctx, "search:foods:pizza", []byte("[]"), time.Minute))
		require.NoError(t, s.Set(ctx, "search:foods:soup", []byte("[]"), time.Second))
		require.NoError(t, s.AddToIndex(ctx, "index:search:foods", "search:foods:pizza", time.Minute))
		require.NoError(t, s.AddToIndex(ctx, "index:search:foods", "search:foods:soup", time.Second))

		clock.Advance(2 * time.Second)

		n, err := s.DeleteIndexed(ctx, "index:search:foods")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		ok, _ := s.Exists(ctx, "search:foods:pizza")
		assert.False(t, ok)

		n, err = s.DeleteIndexed(ctx, "index:search:foods")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("CleanupLoopDropsExpired", func(t *testing.T) {
		clock := newFakeClock()
		s := NewMemoryStore(0, WithClock(clock.Now))
		defer s.Close()

		require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Second))
		clock.Advance(2 * time.Second)
		s.deleteExpired()

		s.mu.RLock()
		_, found := s.items["k"]
		s.mu.RUnlock()
		assert.False(t, found)
	})

	t.Run("CloseIsIdempotent", func(t *testing.T) {
		s := NewMemoryStore(time.Millisecond)
		assert.NoError(t, s.Close())
		assert.NoError(t, s.Close())
	})
}
