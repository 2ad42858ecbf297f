// api/util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/EivorRrz/restro/api/config"
	"github.com/EivorRrz/restro/api/db"
	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/metrics"
)

const DefaultCacheOpTimeout = 200 * time.Millisecond

// TTLPolicy maps each TTL class to a lifetime.
type TTLPolicy struct {
	Entity     time.Duration
	Collection time.Duration
	Filtered   time.Duration
	Search     time.Duration
}

func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Entity:     1800 * time.Second,
		Collection: 600 * time.Second,
		Filtered:   600 * time.Second,
		Search:     300 * time.Second,
	}
}

// TTLPolicyFromConfig falls back to the default for any unset class.
func TTLPolicyFromConfig(cfg config.CacheTTLConfiguration) TTLPolicy {
	p := DefaultTTLPolicy()
	if cfg.Entity > 0 {
		p.Entity = cfg.Entity
	}
	if cfg.Collection > 0 {
		p.Collection = cfg.Collection
	}
	if cfg.Filtered > 0 {
		p.Filtered = cfg.Filtered
	}
	if cfg.Search > 0 {
		p.Search = cfg.Search
	}
	return p
}

func (p TTLPolicy) For(class TTLClass) time.Duration {
	switch class {
	case TTLCollection:
		return p.Collection
	case TTLFiltered:
		return p.Filtered
	case TTLSearch:
		return p.Search
	default:
		return p.Entity
	}
}

// CacheService is the fail-open boundary in front of db.Store: every error is
// logged and absorbed, and every call is bounded by the op timeout.
type CacheService struct {
	store     db.Store
	ttl       TTLPolicy
	opTimeout time.Duration
	metrics   *metrics.Metrics
	group     singleflight.Group
	// epoch advances on every invalidation. A miss fetch started in an older
	// epoch neither shares its result with newer readers nor keeps its write.
	epoch atomic.Uint64
}

type CacheOption func(*CacheService)

func WithTTLPolicy(p TTLPolicy) CacheOption {
	return func(c *CacheService) { c.ttl = p }
}

func WithOpTimeout(d time.Duration) CacheOption {
	return func(c *CacheService) {
		if d > 0 {
			c.opTimeout = d
		}
	}
}

func WithMetrics(m *metrics.Metrics) CacheOption {
	return func(c *CacheService) { c.metrics = m }
}

func NewCacheService(store db.Store, opts ...CacheOption) *CacheService {
	c := &CacheService{
		store:     store,
		ttl:       DefaultTTLPolicy(),
		opTimeout: DefaultCacheOpTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CacheService) TTLPolicy() TTLPolicy {
	return c.ttl
}

// bounded detaches from the caller's cancellation so that invalidation still
// runs after a client goes away, but never waits longer than opTimeout.
func (c *CacheService) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.opTimeout)
}

// Get decodes the cached value of key into dest. It reports false on a miss
// and on any store or decode failure.
func (c *CacheService) Get(ctx context.Context, key string, dest any) bool {
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	raw, err := c.store.Get(ctx, key)
	if errors.Is(err, db.ErrCacheMiss) {
		c.metrics.CacheRequest(metrics.CacheMiss)
		logger.Debug("Cache miss", zap.String("key", key))
		return false
	}
	if err != nil {
		c.metrics.CacheRequest(metrics.CacheError)
		logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.metrics.CacheRequest(metrics.CacheError)
		logger.Warn("Failed to decode cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	c.metrics.CacheRequest(metrics.CacheHit)
	logger.Debug("Cache hit", zap.String("key", key))
	return true
}

func (c *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode value for cache", zap.String("key", key), zap.Error(err))
		return false
	}

	ctx, cancel := c.bounded(ctx)
	defer cancel()

	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CacheService) Delete(ctx context.Context, keys ...string) bool {
	if len(keys) == 0 {
		return true
	}
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	if err := c.store.Delete(ctx, keys...); err != nil {
		logger.Warn("Cache delete failed", zap.Strings("keys", keys), zap.Error(err))
		return false
	}
	return true
}

func (c *CacheService) Exists(ctx context.Context, key string) bool {
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	ok, err := c.store.Exists(ctx, key)
	if err != nil {
		logger.Warn("Cache exists failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

// TTL returns the remaining lifetime of key; ok is false when it is unknown.
func (c *CacheService) TTL(ctx context.Context, key string) (time.Duration, bool) {
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	d, err := c.store.TTL(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrCacheMiss) {
			logger.Warn("Cache ttl failed", zap.String("key", key), zap.Error(err))
		}
		return 0, false
	}
	return d, true
}

func (c *CacheService) DeleteByPattern(ctx context.Context, pattern string) int {
	c.epoch.Add(1)
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	n, err := c.store.DeleteByPattern(ctx, pattern)
	if err != nil {
		logger.Warn("Cache pattern delete failed", zap.String("pattern", pattern), zap.Error(err))
	}
	return n
}

// Cache stores value under key with the TTL of its class. Search results are
// also recorded in the kind's search index.
func (c *CacheService) Cache(ctx context.Context, key CacheKey, value any) bool {
	ttl := c.ttl.For(key.Class)
	if !c.Set(ctx, key.Name, value, ttl) {
		return false
	}
	if key.Class != TTLSearch {
		return true
	}

	ictx, cancel := c.bounded(ctx)
	defer cancel()
	if err := c.store.AddToIndex(ictx, SearchIndex(key.Kind), key.Name, ttl); err != nil {
		// an unindexed search entry would outlive invalidation, drop it
		logger.Warn("Failed to index search key", zap.String("key", key.Name), zap.Error(err))
		c.Delete(ctx, key.Name)
		return false
	}
	return true
}

// Invalidate deletes keys after a mutation. Failure is logged only.
func (c *CacheService) Invalidate(ctx context.Context, keys ...string) {
	c.epoch.Add(1)
	if c.Delete(ctx, keys...) {
		for _, k := range keys {
			kind, _, _ := strings.Cut(k, ":")
			c.metrics.CacheInvalidated(kind, 1)
		}
	}
}

// InvalidateSearch drops every cached search result of kind.
func (c *CacheService) InvalidateSearch(ctx context.Context, kind EntityKind) int {
	c.epoch.Add(1)
	ctx, cancel := c.bounded(ctx)
	defer cancel()

	n, err := c.store.DeleteIndexed(ctx, SearchIndex(kind))
	if err != nil {
		logger.Warn("Failed to invalidate search results",
			zap.String("kind", string(kind)), zap.Error(err))
		return 0
	}
	c.metrics.CacheInvalidated("search", n)
	return n
}

// InvalidateKind is the coarse flush of every cached read of kind.
func (c *CacheService) InvalidateKind(ctx context.Context, kind EntityKind) int {
	total := c.InvalidateSearch(ctx, kind)
	for _, pattern := range kindPatterns(kind) {
		total += c.DeleteByPattern(ctx, pattern)
	}
	c.metrics.CacheInvalidated(string(kind), total)
	logger.Info("Flushed cached reads", zap.String("kind", string(kind)), zap.Int("deleted", total))
	return total
}

// Ping checks the backing store.
func (c *CacheService) Ping(ctx context.Context) error {
	ctx, cancel := c.bounded(ctx)
	defer cancel()
	return c.store.Ping(ctx)
}

// CacheAside serves key from the cache, falling back to fetch on a miss and
// caching a present result. Concurrent misses on one key share a single fetch.
// Errors and absent results (nil pointers, nil slices) are never cached.
//
// The shared fetch runs detached from any one caller's cancellation; each
// caller stops waiting when its own ctx is done. Readers arriving after an
// invalidation start a fresh fetch instead of joining one already in flight.
func CacheAside[T any](ctx context.Context, c *CacheService, key CacheKey, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	var cached T
	if c.Get(ctx, key.Name, &cached) {
		return cached, nil
	}

	epoch := c.epoch.Load()
	flight := c.group.DoChan(fmt.Sprintf("%s#%d", key.Name, epoch), func() (any, error) {
		fctx := context.WithoutCancel(ctx)
		value, err := fetch(fctx)
		if err != nil {
			return value, err
		}
		if !isAbsent(value) {
			c.cacheUnlessInvalidated(fctx, key, value, epoch)
		}
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-flight:
		if res.Shared {
			logger.Debug("Coalesced cache miss", zap.String("key", key.Name))
		}
		if res.Err != nil {
			return zero, res.Err
		}
		result, _ := res.Val.(T)
		return result, nil
	}
}

// cacheUnlessInvalidated writes a fetched value only while no invalidation
// has happened since the fetch began. An invalidation racing the write
// removes the entry again.
func (c *CacheService) cacheUnlessInvalidated(ctx context.Context, key CacheKey, value any, epoch uint64) {
	if c.epoch.Load() != epoch {
		logger.Debug("Skipped caching a read that overlapped an invalidation", zap.String("key", key.Name))
		return
	}
	if !c.Cache(ctx, key, value) {
		return
	}
	if c.epoch.Load() != epoch {
		c.Delete(ctx, key.Name)
	}
}

func isAbsent(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
