// Package playback drives the story viewer: which story is on screen, how far
// its progress bar has run and what the viewer may do with it.
package playback

type State int

const (
	StatePlaying State = iota
	StatePausedByHold
	StatePausedByAnalytics
	StatePausedByDeleteConfirm
	// StateClosed is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePausedByHold:
		return "paused_by_hold"
	case StatePausedByAnalytics:
		return "paused_by_analytics"
	case StatePausedByDeleteConfirm:
		return "paused_by_delete_confirm"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Paused reports whether the progress timer is suspended in s.
func (s State) Paused() bool {
	return s == StatePausedByHold || s == StatePausedByAnalytics || s == StatePausedByDeleteConfirm
}

// Bars renders the per-group progress bars: stories before local are full,
// the current one shows progress and later ones are empty.
func Bars(groupSize, local int, progress float64) []float64 {
	bars := make([]float64, groupSize)
	for i := range bars {
		switch {
		case i < local:
			bars[i] = 100
		case i == local:
			bars[i] = progress
		}
	}
	return bars
}
