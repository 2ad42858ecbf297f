package util

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EivorRrz/restro/api/config"
	"github.com/EivorRrz/restro/api/db"
	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestCache(t *testing.T) (*CacheService, *db.MemoryStore, *testClock) {
	t.Helper()
	clock := newTestClock()
	store := db.NewMemoryStore(0, db.WithClock(clock.Now))
	t.Cleanup(func() { _ = store.Close() })
	return NewCacheService(store), store, clock
}

var errStoreDown = errors.New("connection refused")

// brokenStore fails every call, standing in for an unreachable Redis.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errStoreDown }
func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errStoreDown
}
func (brokenStore) Delete(context.Context, ...string) error            { return errStoreDown }
func (brokenStore) Exists(context.Context, string) (bool, error)       { return false, errStoreDown }
func (brokenStore) TTL(context.Context, string) (time.Duration, error) { return 0, errStoreDown }
func (brokenStore) DeleteByPattern(context.Context, string) (int, error) {
	return 0, errStoreDown
}
func (brokenStore) AddToIndex(context.Context, string, string, time.Duration) error {
	return errStoreDown
}
func (brokenStore) DeleteIndexed(context.Context, string) (int, error) { return 0, errStoreDown }
func (brokenStore) Ping(context.Context) error                         { return errStoreDown }
func (brokenStore) Close() error                                       { return nil }

// slowStore blocks until the caller's context gives up.
type slowStore struct{ brokenStore }

func (slowStore) Get(ctx context.Context, _ string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestCacheAside(t *testing.T) {
	ctx := context.Background()

	t.Run("HitSkipsPersistence", func(t *testing.T) {
		cache, store, _ := newTestCache(t)
		require.NoError(t, store.Set(ctx, "user:42", []byte(`{"id":"42","userName":"ana"}`), time.Hour))

		user, err := CacheAside(ctx, cache, UserKey("42"), func(context.Context) (*model.User, error) {
			t.Fatal("persistence must not be called on a hit")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ana", user.UserName)
	})

	t.Run("MissFetchesAndCachesWithClassTTL", func(t *testing.T) {
		cache, store, _ := newTestCache(t)

		calls := 0
		fetch := func(context.Context) (*model.User, error) {
			calls++
			return &model.User{ID: "42", UserName: "ana"}, nil
		}

		user, err := CacheAside(ctx, cache, UserKey("42"), fetch)
		require.NoError(t, err)
		assert.Equal(t, "42", user.ID)

		ttl, err := store.TTL(ctx, "user:42")
		require.NoError(t, err)
		assert.Equal(t, 1800*time.Second, ttl)

		_, err = CacheAside(ctx, cache, UserKey("42"), fetch)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("NotFoundIsNeverCached", func(t *testing.T) {
		cache, store, _ := newTestCache(t)

		calls := 0
		fetch := func(context.Context) (*model.Food, error) {
			calls++
			return nil, food_errors.ErrFoodNotFound
		}
		for i := 0; i < 2; i++ {
			_, err := CacheAside(ctx, cache, FoodKey("missing"), fetch)
			assert.ErrorIs(t, err, food_errors.ErrFoodNotFound)
		}
		assert.Equal(t, 2, calls)

		ok, _ := store.Exists(ctx, "food:missing")
		assert.False(t, ok)
	})

	t.Run("NilResultIsNotCached", func(t *testing.T) {
		cache, store, _ := newTestCache(t)

		_, err := CacheAside(ctx, cache, FoodsByCategoryKey("c1"), func(context.Context) ([]*model.Food, error) {
			return nil, nil
		})
		require.NoError(t, err)
		ok, _ := store.Exists(ctx, "foods:category:c1")
		assert.False(t, ok)
	})

	t.Run("EmptyListIsCached", func(t *testing.T) {
		cache, store, _ := newTestCache(t)

		foods, err := CacheAside(ctx, cache, FoodsByCategoryKey("c1"), func(context.Context) ([]*model.Food, error) {
			return []*model.Food{}, nil
		})
		require.NoError(t, err)
		assert.Empty(t, foods)

		ttl, err := store.TTL(ctx, "foods:category:c1")
		require.NoError(t, err)
		assert.Equal(t, 600*time.Second, ttl)
	})

	t.Run("EntryExpiresAfterTTL", func(t *testing.T) {
		cache, _, clock := newTestCache(t)

		calls := 0
		fetch := func(context.Context) ([]*model.Restaurant, error) {
			calls++
			return []*model.Restaurant{{ID: "r1"}}, nil
		}
		_, err := CacheAside(ctx, cache, AllRestaurantsKey(), fetch)
		require.NoError(t, err)

		clock.Advance(599 * time.Second)
		_, err = CacheAside(ctx, cache, AllRestaurantsKey(), fetch)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)

		clock.Advance(time.Second)
		_, err = CacheAside(ctx, cache, AllRestaurantsKey(), fetch)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("ConcurrentMissesShareOneFetch", func(t *testing.T) {
		cache, _, _ := newTestCache(t)

		var calls int32
		release := make(chan struct{})
		fetch := func(context.Context) (*model.Food, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return &model.Food{ID: "f1", Title: "Pizza"}, nil
		}

		const callers = 8
		var wg sync.WaitGroup
		results := make([]*model.Food, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				food, err := CacheAside(ctx, cache, FoodKey("f1"), fetch)
				assert.NoError(t, err)
				results[i] = food
			}(i)
		}
		time.Sleep(100 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, food := range results {
			require.NotNil(t, food)
			assert.Equal(t, "Pizza", food.Title)
		}
	})

	t.Run("ReadAfterInvalidationSkipsInFlightFetch", func(t *testing.T) {
		cache, store, _ := newTestCache(t)

		var title atomic.Value
		title.Store("old")
		var calls int32
		started := make(chan struct{})
		release := make(chan struct{})
		fetch := func(context.Context) (*model.Food, error) {
			food := &model.Food{ID: "7", Title: title.Load().(string)}
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
				<-release
			}
			return food, nil
		}

		before := make(chan *model.Food, 1)
		go func() {
			food, err := CacheAside(ctx, cache, FoodKey("7"), fetch)
			assert.NoError(t, err)
			before <- food
		}()
		<-started

		// mutation commits, then invalidates
		title.Store("new")
		cache.Invalidate(ctx, FoodKey("7").Name)

		after, err := CacheAside(ctx, cache, FoodKey("7"), fetch)
		require.NoError(t, err)
		assert.Equal(t, "new", after.Title)

		close(release)
		assert.Equal(t, "old", (<-before).Title)

		raw, err := store.Get(ctx, "food:7")
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"title":"new"`)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("FetchOverlappingInvalidationIsNotCached", func(t *testing.T) {
		cache, store, _ := newTestCache(t)

		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, err := CacheAside(ctx, cache, FoodSearchKey("pizza"), func(context.Context) ([]*model.Food, error) {
				close(started)
				<-release
				return []*model.Food{{ID: "f1"}}, nil
			})
			assert.NoError(t, err)
		}()
		<-started

		cache.InvalidateSearch(ctx, KindFood)
		close(release)
		<-done

		ok, _ := store.Exists(ctx, "search:foods:pizza")
		assert.False(t, ok)
	})

	t.Run("CancelledCallerDoesNotFailSharedFetch", func(t *testing.T) {
		cache, _, _ := newTestCache(t)

		started := make(chan struct{})
		release := make(chan struct{})
		fetch := func(fctx context.Context) (*model.Food, error) {
			close(started)
			<-release
			if err := fctx.Err(); err != nil {
				return nil, err
			}
			return &model.Food{ID: "f1", Title: "Pizza"}, nil
		}

		callerCtx, cancel := context.WithCancel(ctx)
		first := make(chan error, 1)
		go func() {
			_, err := CacheAside(callerCtx, cache, FoodKey("f1"), fetch)
			first <- err
		}()
		<-started

		second := make(chan *model.Food, 1)
		go func() {
			food, err := CacheAside(ctx, cache, FoodKey("f1"), fetch)
			assert.NoError(t, err)
			second <- food
		}()
		time.Sleep(50 * time.Millisecond)

		cancel()
		assert.ErrorIs(t, <-first, context.Canceled)

		close(release)
		food := <-second
		require.NotNil(t, food)
		assert.Equal(t, "Pizza", food.Title)
	})

	t.Run("UnavailableCacheFallsThrough", func(t *testing.T) {
		cache := NewCacheService(brokenStore{})

		user, err := CacheAside(ctx, cache, UserKey("42"), func(context.Context) (*model.User, error) {
			return &model.User{ID: "42"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "42", user.ID)
	})
}

func TestCacheServiceFailsOpen(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(brokenStore{})

	var dest map[string]any
	assert.False(t, cache.Get(ctx, "user:1", &dest))
	assert.False(t, cache.Set(ctx, "user:1", map[string]any{"id": "1"}, time.Minute))
	assert.False(t, cache.Delete(ctx, "user:1"))
	assert.False(t, cache.Exists(ctx, "user:1"))
	_, ok := cache.TTL(ctx, "user:1")
	assert.False(t, ok)
	assert.Zero(t, cache.DeleteByPattern(ctx, "users:*"))
	assert.Zero(t, cache.InvalidateSearch(ctx, KindFood))
	assert.False(t, cache.Cache(ctx, FoodSearchKey("pizza"), []string{}))
	assert.Error(t, cache.Ping(ctx))

	cache.Invalidate(ctx, "user:1", "users:all")
}

func TestCacheServiceBoundsSlowStore(t *testing.T) {
	cache := NewCacheService(slowStore{}, WithOpTimeout(20*time.Millisecond))

	start := time.Now()
	var dest string
	assert.False(t, cache.Get(context.Background(), "user:1", &dest))
	assert.Less(t, time.Since(start), time.Second)
}

func TestCacheServiceUndecodableValueIsMiss(t *testing.T) {
	ctx := context.Background()
	cache, store, _ := newTestCache(t)
	require.NoError(t, store.Set(ctx, "user:1", []byte("not json"), time.Minute))

	var user model.User
	assert.False(t, cache.Get(ctx, "user:1", &user))
}

func TestSearchInvalidation(t *testing.T) {
	ctx := context.Background()
	cache, store, _ := newTestCache(t)

	require.True(t, cache.Cache(ctx, FoodSearchKey("pizza"), []*model.Food{{ID: "f1"}}))
	require.True(t, cache.Cache(ctx, FoodSearchKey("soup"), []*model.Food{}))
	require.True(t, cache.Cache(ctx, RestaurantSearchKey("pizza"), []*model.Restaurant{}))

	ttl, err := store.TTL(ctx, "search:foods:pizza")
	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, ttl)

	assert.Equal(t, 2, cache.InvalidateSearch(ctx, KindFood))

	ok, _ := store.Exists(ctx, "search:foods:pizza")
	assert.False(t, ok)
	ok, _ = store.Exists(ctx, "search:restaurants:pizza")
	assert.True(t, ok)
}

func TestFoodUpdateInvalidatesOldAndNewKeys(t *testing.T) {
	ctx := context.Background()
	cache, store, _ := newTestCache(t)

	for _, k := range []CacheKey{FoodKey("f1"), AllFoodsKey(), FoodsByCategoryKey("c1"), FoodsByCategoryKey("c2"), FoodsByRestaurantKey("r1")} {
		require.True(t, cache.Cache(ctx, k, []string{"x"}))
	}
	require.True(t, cache.Cache(ctx, FoodKey("f2"), "other"))

	before := &model.Food{ID: "f1", Category: "c1", Restaurant: "r1"}
	after := &model.Food{ID: "f1", Category: "c2", Restaurant: "r1"}
	cache.Invalidate(ctx, FoodInvalidationKeys(before, after)...)

	for _, k := range []string{"food:f1", "foods:all", "foods:category:c1", "foods:category:c2", "foods:restaurant:r1"} {
		ok, _ := store.Exists(ctx, k)
		assert.False(t, ok, k)
	}
	ok, _ := store.Exists(ctx, "food:f2")
	assert.True(t, ok)
}

func TestInvalidateKind(t *testing.T) {
	ctx := context.Background()
	cache, store, _ := newTestCache(t)

	require.True(t, cache.Cache(ctx, FoodKey("f1"), "a"))
	require.True(t, cache.Cache(ctx, AllFoodsKey(), []string{}))
	require.True(t, cache.Cache(ctx, FoodsByRestaurantKey("r1"), []string{}))
	require.True(t, cache.Cache(ctx, FoodSearchKey("pizza"), []string{}))
	require.True(t, cache.Cache(ctx, CategoryKey("c1"), "keep"))

	assert.Equal(t, 4, cache.InvalidateKind(ctx, KindFood))

	ok, _ := store.Exists(ctx, "category:c1")
	assert.True(t, ok)
}

func TestTTLPolicy(t *testing.T) {
	p := TTLPolicyFromConfig(config.CacheTTLConfiguration{Search: time.Minute})
	assert.Equal(t, time.Minute, p.For(TTLSearch))
	assert.Equal(t, 1800*time.Second, p.For(TTLEntity))

	def := DefaultTTLPolicy()
	assert.Equal(t, 1800*time.Second, def.For(TTLEntity))
	assert.Equal(t, 600*time.Second, def.For(TTLCollection))
	assert.Equal(t, 600*time.Second, def.For(TTLFiltered))
	assert.Equal(t, 300*time.Second, def.For(TTLSearch))
}
