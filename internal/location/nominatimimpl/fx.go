package nominatimimpl

import (
	"github.com/orgball2608/story-engine/internal/location"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(location.Client)),
	),
)
