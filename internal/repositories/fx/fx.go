package fx

import (
	"github.com/orgball2608/story-engine/internal/repositories/like"
	"github.com/orgball2608/story-engine/internal/repositories/notification"
	"github.com/orgball2608/story-engine/internal/repositories/profile"
	"github.com/orgball2608/story-engine/internal/repositories/story"
	"github.com/orgball2608/story-engine/internal/repositories/view"
	"go.uber.org/fx"
)

var Module = fx.Options(
	story.Module,
	view.Module,
	like.Module,
	notification.Module,
	profile.Module,
)
