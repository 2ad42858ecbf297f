// api/db/memory_store.go
package db

import (
	"context"
	"path"
	"sync"
	"time"

	"go.uber.org/zap"

	logger "github.com/EivorRrz/restro/api/logging"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore is a process-local Store used for single-node runs and tests.
// Expired entries are dropped on access and by a background cleanup loop.
type MemoryStore struct {
	mu      sync.RWMutex
	items   map[string]memoryEntry
	indexes map[string]map[string]struct{}
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithClock replaces the wall clock, letting tests move time forward.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(cleanupInterval time.Duration, opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		items:   make(map[string]memoryEntry),
		indexes: make(map[string]map[string]struct{}),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if cleanupInterval > 0 {
		go s.cleanupLoop(cleanupInterval)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, found := s.items[key]
	s.mu.RUnlock()

	if !found {
		return nil, ErrCacheMiss
	}
	if entry.expired(s.now()) {
		s.mu.Lock()
		// re-check under the write lock, the entry may have been replaced
		if entry, found = s.items[key]; found && entry.expired(s.now()) {
			delete(s.items, key)
			found = false
		}
		s.mu.Unlock()
		if !found {
			return nil, ErrCacheMiss
		}
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	entry := memoryEntry{value: stored}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.items[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.items, key)
		delete(s.indexes, key)
	}
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := s.Get(ctx, key); err != nil {
		if err == ErrCacheMiss {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) TTL(_ context.Context, key string) (time.Duration, error) {
	s.mu.RLock()
	entry, found := s.items[key]
	s.mu.RUnlock()

	now := s.now()
	if !found || entry.expired(now) || entry.expiresAt.IsZero() {
		return 0, ErrCacheMiss
	}
	return entry.expiresAt.Sub(now), nil
}

func (s *MemoryStore) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for key := range s.items {
		if ok, _ := path.Match(pattern, key); ok {
			delete(s.items, key)
			deleted++
		}
	}
	return deleted, nil
}

// AddToIndex keeps index members in a set; member keys expire on their own.
func (s *MemoryStore) AddToIndex(_ context.Context, index, key string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, ok := s.indexes[index]
	if !ok {
		members = make(map[string]struct{})
		s.indexes[index] = members
	}
	members[key] = struct{}{}
	return nil
}

func (s *MemoryStore) DeleteIndexed(_ context.Context, index string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	now := s.now()
	for key := range s.indexes[index] {
		if entry, ok := s.items[key]; ok {
			if !entry.expired(now) {
				deleted++
			}
			delete(s.items, key)
		}
	}
	delete(s.indexes, index)
	return deleted, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close stops the cleanup loop. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.once.Do(func() {
		close(s.stop)
	})
	return nil
}

func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.deleteExpired()
		case <-s.stop:
			logger.Debug("Stopped in-memory cache cleanup loop")
			return
		}
	}
}

func (s *MemoryStore) deleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	deleted := 0
	for key, entry := range s.items {
		if entry.expired(now) {
			delete(s.items, key)
			deleted++
		}
	}
	if deleted > 0 {
		logger.Debug("In-memory cache cleanup finished", zap.Int("deleted", deleted))
	}
}
