package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Limiter throttles actions per key, typically a user id.
type Limiter interface {
	Allow(key string) bool
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per key in memory. A bucket left
// alone long enough to refill completely is dropped on the next sweep.
type InMemoryLimiter struct {
	buckets   map[string]*bucket
	mu        sync.Mutex
	clock     clockwork.Clock
	r         rate.Limit // Rate of adding tokens (e.g., 1 token every 5 seconds)
	b         int        // Bucket size (e.g., can perform 3 searches in a row)
	idle      time.Duration
	lastSweep time.Time
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(1, 5*time.Second, 3) -> allows 1 action every 5 seconds, burst of 3 actions
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	return newInMemoryLimiter(clockwork.NewRealClock(), requests, per, burst)
}

func newInMemoryLimiter(clock clockwork.Clock, requests int, per time.Duration, burst int) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst <= 0 {
		burst = 1
	}
	interval := per / time.Duration(requests)

	idle := interval * time.Duration(burst)
	if idle < per {
		idle = per
	}
	if idle <= 0 {
		idle = time.Minute
	}

	return &InMemoryLimiter{
		buckets:   make(map[string]*bucket),
		clock:     clock,
		r:         rate.Every(interval),
		b:         burst,
		idle:      idle,
		lastSweep: clock.Now(),
	}
}

// Allow checks if key may perform an action now, consuming a token if so.
func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweepLocked(now)
	}

	bk, exists := l.buckets[key]
	if !exists {
		bk = &bucket{limiter: rate.NewLimiter(l.r, l.b)}
		l.buckets[key] = bk
	}
	bk.lastSeen = now

	return bk.limiter.AllowN(now, 1)
}

func (l *InMemoryLimiter) sweepLocked(now time.Time) {
	for key, bk := range l.buckets {
		if now.Sub(bk.lastSeen) >= l.idle {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// Len reports how many keys currently hold a bucket.
func (l *InMemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Unlimited never throttles.
type Unlimited struct{}

func (Unlimited) Allow(string) bool {
	return true
}
