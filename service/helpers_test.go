package service

import (
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/EivorRrz/restro/api/db"
	"github.com/EivorRrz/restro/api/metrics"
	"github.com/EivorRrz/restro/api/util"
)

const testJWTSecret = "service-test-secret"

type testClock struct {
	mu  sync.Mutex
	now time.Time
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

type testEnv struct {
	clock *testClock
	store *db.MemoryStore
	u     Utilities
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	store := db.NewMemoryStore(0, db.WithClock(clock.Now))
	t.Cleanup(func() { _ = store.Close() })

	m := metrics.New()
	return &testEnv{
		clock: clock,
		store: store,
		u: Utilities{
			Cache:        util.NewCacheService(store, util.WithMetrics(m)),
			Tokens:       util.NewTokenUtil(testJWTSecret, "restro-api", util.DefaultTokenLifetime, util.WithTokenClock(clock.Now)),
			Passwords:    util.NewPasswordUtil(bcrypt.MinCost),
			Validation:   util.NewValidationUtil(),
			Notification: util.NewNotificationService(),
			EventBus:     util.NewEventBus(),
			Metrics:      m,
		},
	}
}

func (e *testEnv) hash(t *testing.T, secret string) string {
	t.Helper()
	h, err := e.u.Passwords.Hash(secret)
	if err != nil {
		t.Fatal(err)
	}
	return h
}
