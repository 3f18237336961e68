package playback

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverAdvancesAndStopsOnClose(t *testing.T) {
	f := newFixture(t)
	a := mkStory("a", "owner", domain.MediaTypeText, 1, 1)
	b := mkStory("b", "owner", domain.MediaTypeText, 10, 2)

	f.expectEntry(a, "me", 0, 0, false)
	v := f.open(t, "me", "a", a, b)
	f.expectEntry(b, "me", 0, 0, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		NewDriver(v, f.clock, tick).Run(ctx)
		close(stopped)
	}()
	require.NoError(t, f.clock.BlockUntilContext(ctx, 1))

	require.Eventually(t, func() bool {
		f.clock.Advance(tick)
		return v.Snapshot().Story.ID == "b"
	}, 5*time.Second, time.Millisecond)

	v.Close()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop after close")
	}
}

func TestStaleTickIsIgnored(t *testing.T) {
	f := newFixture(t)
	a := mkStory("a", "owner", domain.MediaTypeText, 10, 1)

	f.expectEntry(a, "me", 0, 0, false)
	v := f.open(t, "me", "a", a)

	gen := v.timerGeneration()
	v.tickAt(gen, time.Second)
	assert.InDelta(t, 10.0, v.Snapshot().Progress, 1e-9)

	// hold and release: the timer restarted, ticks read before it are stale
	v.PointerDown()
	f.clock.Advance(time.Second)
	v.PointerUp(0.5)

	v.tickAt(gen, time.Second)
	assert.InDelta(t, 10.0, v.Snapshot().Progress, 1e-9)

	v.tickAt(v.timerGeneration(), time.Second)
	assert.InDelta(t, 20.0, v.Snapshot().Progress, 1e-9)
}
