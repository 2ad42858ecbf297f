// api/util/rate_limiter.go
package util

import (
	"context"
	"time"

	"go.uber.org/zap"

	logger "github.com/EivorRrz/restro/api/logging"
	"github.com/EivorRrz/restro/api/metrics"
)

const (
	DefaultRateLimitRequests = 100
	DefaultRateLimitWindow   = 15 * time.Minute
)

// RateLimiter is a fixed-window request counter per identity kept in the
// cache. The read and the write are separate calls, so concurrent requests
// can overshoot the limit slightly. A cache outage lets requests through.
type RateLimiter struct {
	cache   *CacheService
	limit   int
	window  time.Duration
	metrics *metrics.Metrics
}

func NewRateLimiter(cache *CacheService, limit int, window time.Duration, m *metrics.Metrics) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimitRequests
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	return &RateLimiter{cache: cache, limit: limit, window: window, metrics: m}
}

func (r *RateLimiter) Limit() int            { return r.limit }
func (r *RateLimiter) Window() time.Duration { return r.window }

// Check applies the configured limit and window to identity.
func (r *RateLimiter) Check(ctx context.Context, identity string) bool {
	return r.Allow(ctx, identity, r.limit, r.window)
}

// Allow counts one action for identity and reports whether it is within limit.
// A denied action leaves the counter untouched.
func (r *RateLimiter) Allow(ctx context.Context, identity string, limit int, window time.Duration) bool {
	key := RateLimitKey(identity)

	var count int
	if !r.cache.Get(ctx, key, &count) {
		count = 0
	}

	if count >= limit {
		r.metrics.RateLimitDenied()
		logger.Warn("Rate limit exceeded",
			zap.String("identity", identity),
			zap.Int("count", count),
			zap.Int("limit", limit))
		return false
	}

	ttl := window
	if count > 0 {
		remaining, ok := r.cache.TTL(ctx, key)
		if ok && remaining > 0 {
			ttl = remaining
		} else {
			// the window lapsed between the read and now
			count = 0
		}
	}

	r.cache.Set(ctx, key, count+1, ttl)
	return true
}
