// api/db/redis_store.go
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/EivorRrz/restro/api/config"
	logger "github.com/EivorRrz/restro/api/logging"
)

const scanBatchSize = 100

// deleteIndexedScript removes every member of the index set and the set
// itself in one round trip, so no reader sees a half-cleared index.
var deleteIndexedScript = redis.NewScript(`
local members = redis.call('SMEMBERS', KEYS[1])
local deleted = 0
for i = 1, #members do
	deleted = deleted + redis.call('DEL', members[i])
end
redis.call('DEL', KEYS[1])
return deleted
`)

// RedisStore is the Redis-backed Store. Every key is stored under prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(cfg config.RedisConfiguration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		PoolTimeout:  cfg.PoolTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return NewRedisStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = s.key(k)
	}
	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key, err)
	}
	return n > 0, nil
}

func (s *RedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	d, err := s.client.PTTL(ctx, s.key(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis ttl %s: %w", key, err)
	}
	// -2: key missing, -1: key without expiry
	if d < 0 {
		return 0, ErrCacheMiss
	}
	return d, nil
}

// DeleteByPattern walks the keyspace with SCAN. It never blocks the server the
// way KEYS does, at the price of a window where new matching keys survive.
// Matches are collected over the full scan before any is deleted, so the
// cursor never walks a keyspace that is shrinking under it.
func (s *RedisStore) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	var (
		cursor  uint64
		matched []string
	)
	seen := make(map[string]struct{})
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.key(pattern), scanBatchSize).Result()
		if err != nil {
			return 0, fmt.Errorf("redis scan %s: %w", pattern, err)
		}
		// SCAN may return a key more than once
		for _, k := range keys {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				matched = append(matched, k)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	deleted := 0
	for start := 0; start < len(matched); start += scanBatchSize {
		end := min(start+scanBatchSize, len(matched))
		n, err := s.client.Del(ctx, matched[start:end]...).Result()
		if err != nil {
			return deleted, fmt.Errorf("redis del %s: %w", pattern, err)
		}
		deleted += int(n)
	}
	return deleted, nil
}

func (s *RedisStore) AddToIndex(ctx context.Context, index, key string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, s.key(index), s.key(key))
		if ttl > 0 {
			pipe.Expire(ctx, s.key(index), ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis index %s: %w", index, err)
	}
	return nil
}

func (s *RedisStore) DeleteIndexed(ctx context.Context, index string) (int, error) {
	n, err := deleteIndexedScript.Run(ctx, s.client, []string{s.key(index)}).Int()
	if err != nil {
		return 0, fmt.Errorf("redis delete index %s: %w", index, err)
	}
	return n, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
		return err
	}
	logger.Info("Redis connection closed successfully")
	return nil
}
