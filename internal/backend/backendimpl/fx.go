package backendimpl

import (
	"github.com/orgball2608/story-engine/internal/backend"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(backend.Client)),
	),
)
