package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsEveryTask(t *testing.T) {
	p, err := NewPool(2, logger.NewNop())
	require.NoError(t, err)
	defer p.Release(time.Second)

	var (
		wg   sync.WaitGroup
		done atomic.Int32
	)
	for range 10 {
		wg.Add(1)
		p.Go(func() {
			defer wg.Done()
			done.Add(1)
		})
	}
	wg.Wait()

	assert.Equal(t, int32(10), done.Load())
}

func TestPoolSurvivesPanics(t *testing.T) {
	p, err := NewPool(1, logger.NewNop())
	require.NoError(t, err)
	defer p.Release(time.Second)

	p.Go(func() { panic("boom") })

	ran := make(chan struct{})
	p.Go(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task after panic never ran")
	}
}

func TestReleasedPoolStillRunsTasks(t *testing.T) {
	p, err := NewPool(1, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, p.Release(time.Second))

	ran := make(chan struct{})
	p.Go(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task was dropped")
	}
}

func TestNewPoolDefaultsSize(t *testing.T) {
	p, err := NewPool(0, logger.NewNop())
	require.NoError(t, err)
	defer p.Release(time.Second)

	assert.Equal(t, defaultSize, p.pool.Cap())
}
