package ratelimit

import (
	"sync"
	"time"
)

// staleAfter is how long an untouched bucket survives before eviction.
const staleAfter = 10 * time.Minute

// evictInterval is how often the store scans for stale buckets.
const evictInterval = 1 * time.Minute

type bucket struct {
	mu      sync.Mutex
	tokens  float64
	updated time.Time
}

// tokensAt returns the bucket's token count at the given time, applying
// refill since the last update. Callers must hold b.mu.
func (b *bucket) tokensAt(now time.Time, rate, burst float64) float64 {
	elapsed := now.Sub(b.updated).Seconds()
	tokens := b.tokens + elapsed*rate
	if tokens > burst {
		tokens = burst
	}
	return tokens
}

type bucketStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	done    chan struct{}
}

func newBucketStore() *bucketStore {
	s := &bucketStore{
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	go s.evictLoop()
	return s
}

// get returns the bucket for key, creating a full one if absent.
func (s *bucketStore) get(key string, burst float64) *bucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{tokens: burst, updated: time.Now()}
		s.buckets[key] = b
	}
	return b
}

func (s *bucketStore) stop() {
	close(s.done)
}

func (s *bucketStore) evictLoop() {
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.evictStale(now)
		}
	}
}

func (s *bucketStore) evictStale(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, b := range s.buckets {
		b.mu.Lock()
		stale := now.Sub(b.updated) > staleAfter
		b.mu.Unlock()
		if stale {
			delete(s.buckets, key)
		}
	}
}
