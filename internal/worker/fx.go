package worker

import (
	"github.com/orgball2608/story-engine/internal/playback"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	New,
	func(p *Pool) playback.Dispatcher {
		return p
	},
)
