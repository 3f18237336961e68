package ratelimit

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryLimiterBurstPerKey(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	assert.True(t, l.Allow("alice"))
	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))

	// buckets are independent
	assert.True(t, l.Allow("bob"))
}

func TestInMemoryLimiterRefills(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := newInMemoryLimiter(clock, 1, 2*time.Second, 1)

	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))

	clock.Advance(2 * time.Second)
	assert.True(t, l.Allow("alice"))
}

func TestInMemoryLimiterEvictsIdleBuckets(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := newInMemoryLimiter(clock, 1, 2*time.Second, 3)

	for _, key := range []string{"a", "b", "c"} {
		assert.True(t, l.Allow(key))
	}
	assert.Equal(t, 3, l.Len())

	// "c" stays busy, the others go idle past a full refill
	clock.Advance(4 * time.Second)
	assert.True(t, l.Allow("c"))
	clock.Advance(2 * time.Second)
	assert.True(t, l.Allow("c"))

	assert.Equal(t, 1, l.Len())
}

func TestEvictedBucketStartsFull(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := newInMemoryLimiter(clock, 1, time.Second, 2)

	assert.True(t, l.Allow("alice"))
	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))

	clock.Advance(2 * time.Second)
	assert.True(t, l.Allow("alice"))
	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))
}

func TestUnlimited(t *testing.T) {
	var l Limiter = Unlimited{}
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("x"))
	}
}
