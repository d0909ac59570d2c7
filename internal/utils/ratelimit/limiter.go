// Package ratelimit implements a token bucket rate limiter keyed by an
// arbitrary string, typically a client IP. It is used to throttle
// credential endpoints such as login and password reset.
package ratelimit

import (
	"time"
)

// Limiter applies a token bucket policy per key. Each key gets a bucket
// holding up to Burst tokens refilled at Rate tokens per second.
type Limiter struct {
	store *bucketStore

	// rate is the refill rate in tokens per second.
	rate float64

	// burst is the bucket capacity.
	burst float64
}

// NewLimiter creates a limiter allowing ratePerSecond sustained requests
// with bursts up to burst. Stale buckets are evicted in the background
// until Stop is called.
func NewLimiter(ratePerSecond float64, burst int) *Limiter {
	return &Limiter{
		store: newBucketStore(),
		rate:  ratePerSecond,
		burst: float64(burst),
	}
}

// Allow reports whether the request identified by key may proceed, and
// consumes one token when it may.
func (l *Limiter) Allow(key string) bool {
	return l.allowAt(key, time.Now())
}

// RetryAfter returns how long the caller should wait before the next
// request for key can succeed. It returns zero when a request is
// currently allowed.
func (l *Limiter) RetryAfter(key string) time.Duration {
	b := l.store.get(key, l.burst)
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	tokens := b.tokensAt(now, l.rate, l.burst)
	if tokens >= 1 {
		return 0
	}
	missing := 1 - tokens
	return time.Duration(missing / l.rate * float64(time.Second))
}

// Stop terminates the background eviction goroutine.
func (l *Limiter) Stop() {
	l.store.stop()
}

func (l *Limiter) allowAt(key string, now time.Time) bool {
	b := l.store.get(key, l.burst)
	b.mu.Lock()
	defer b.mu.Unlock()

	tokens := b.tokensAt(now, l.rate, l.burst)
	if tokens < 1 {
		b.tokens = tokens
		b.updated = now
		return false
	}

	b.tokens = tokens - 1
	b.updated = now
	return true
}
