// api/db/store.go
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/config"
	logger "github.com/EivorRrz/restro/api/logging"
)

// ErrCacheMiss is returned by Store.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Store is the raw key/value contract of the cache backend. Implementations
// return errors; the fail-open boundary lives in util.CacheService.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes keys; absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	// TTL returns the remaining lifetime of key, or ErrCacheMiss when the key is
	// absent or carries no expiry.
	TTL(ctx context.Context, key string) (time.Duration, error)
	// DeleteByPattern deletes every key matching a glob pattern. Keys created
	// while the pattern is being resolved may survive.
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
	// AddToIndex records key as a member of index, extending the index lifetime
	// to at least ttl.
	AddToIndex(ctx context.Context, index, key string, ttl time.Duration) error
	// DeleteIndexed deletes every member of index together with the index.
	DeleteIndexed(ctx context.Context, index string) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

const (
	StoreTypeRedis    = "redis"
	StoreTypeInMemory = "in-memory"
)

// NewStore builds the cache backend selected by cache.type.
func NewStore(cfg *config.Configuration) (Store, error) {
	switch cfg.Cache.Type {
	case StoreTypeInMemory:
		logger.Info("Initialising in-memory cache store",
			zap.Duration("cleanupInterval", cfg.Cache.CleanupInterval))
		return NewMemoryStore(cfg.Cache.CleanupInterval), nil
	case StoreTypeRedis, "":
		logger.Info("Initialising Redis cache store", zap.String("addr", cfg.Redis.Addr))
		return NewRedisStore(cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Cache.Type)
	}
}
