package s3impl

import (
	"github.com/orgball2608/story-engine/internal/media"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		New,
		fx.As(new(media.Storage)),
	),
)
