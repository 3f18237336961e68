package playback

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Driver is the viewer's autonomous progress timer. It restarts its ticker on
// every reset the viewer signals and ignores ticks issued before the reset.
type Driver struct {
	viewer   *Viewer
	clock    clockwork.Clock
	interval time.Duration
}

func NewDriver(viewer *Viewer, clock clockwork.Clock, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Driver{
		viewer:   viewer,
		clock:    clock,
		interval: interval,
	}
}

// Run blocks until ctx is done or the viewer closes.
func (d *Driver) Run(ctx context.Context) {
	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	gen := d.viewer.timerGeneration()
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.viewer.Done():
			return
		case <-d.viewer.Resets():
			ticker.Reset(d.interval)
			gen = d.viewer.timerGeneration()
		case <-ticker.Chan():
			d.viewer.tickAt(gen, d.interval)
		}
	}
}

// Start runs the driver on its own goroutine.
func (d *Driver) Start(ctx context.Context) {
	go d.Run(ctx)
}
