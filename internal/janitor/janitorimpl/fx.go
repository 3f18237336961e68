package janitorimpl

import (
	"github.com/orgball2608/story-engine/internal/janitor"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(janitor.Client)),
	),
)
