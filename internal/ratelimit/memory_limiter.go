package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryLimiter keeps one token-bucket limiter per key in process memory.
// Suitable for single-instance deployments and tests; multi-instance
// deployments should use the Redis backend so all instances share counters.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*memoryBucket
}

type memoryBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*memoryBucket),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &memoryBucket{
			limiter: rate.NewLimiter(rate.Limit(float64(limit)/window.Seconds()), limit),
		}
		l.buckets[key] = b
		l.pruneLocked(now, window)
	}
	b.lastSeen = now

	return b.limiter.Allow(), nil
}

// pruneLocked drops buckets idle for several windows. Runs on bucket
// creation so a steady key set costs nothing.
func (l *MemoryLimiter) pruneLocked(now time.Time, window time.Duration) {
	cutoff := now.Add(-3 * window)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
