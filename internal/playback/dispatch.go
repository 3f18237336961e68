package playback

// Dispatcher runs the viewer's persistence side effects off the caller's path.
type Dispatcher interface {
	Go(task func())
}

// Inline runs every task on the calling goroutine. Tests use it to make side
// effects deterministic.
type Inline struct{}

func (Inline) Go(task func()) {
	task()
}
