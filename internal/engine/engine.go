// Package engine ties the composer and the viewer to their production
// collaborators.
package engine

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-engine/internal/backend"
	"github.com/orgball2608/story-engine/internal/composer"
	"github.com/orgball2608/story-engine/internal/location"
	"github.com/orgball2608/story-engine/internal/playback"
	"github.com/orgball2608/story-engine/internal/ratelimit"
	"github.com/orgball2608/story-engine/internal/sticker"
	"github.com/orgball2608/story-engine/internal/storygroup"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/errors"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

var ErrNoStories = errors.WrapWithCode(errors.ErrNotFound, errors.CodeStoryNotInFeed, "owner has no active stories")

type Opts struct {
	fx.In

	Backend    backend.Client
	Locations  location.Client
	Dispatcher playback.Dispatcher
	Clock      clockwork.Clock
	Validator  *validator.Validate
	Config     *config.Config
	Logger     logger.Logger
}

type Engine struct {
	backend    backend.Client
	locations  location.Client
	dispatcher playback.Dispatcher
	clock      clockwork.Clock
	validate   *validator.Validate
	loader     *storygroup.Loader
	limiter    ratelimit.Limiter
	viewerCfg  playback.Config
	stickerCfg sticker.Config
	root       logger.Logger
	logger     logger.Logger
}

// Ring is an owner's entry in the story tray.
type Ring struct {
	OwnerID   string
	Count     int
	HasUnseen bool
}

func New(opts Opts) *Engine {
	cfg := opts.Config

	viewerCfg := playback.DefaultConfig()
	if cfg.Story.TickInterval > 0 {
		viewerCfg.TickInterval = cfg.Story.TickInterval
	}
	if cfg.Story.HoldThreshold > 0 {
		viewerCfg.HoldThreshold = cfg.Story.HoldThreshold
	}

	stickerCfg := sticker.DefaultConfig()
	if cfg.Story.TapThreshold > 0 {
		stickerCfg.TapThreshold = cfg.Story.TapThreshold
	}
	if cfg.Story.DropZoneY > 0 {
		stickerCfg.DropZoneY = cfg.Story.DropZoneY
	}

	return &Engine{
		backend:    opts.Backend,
		locations:  opts.Locations,
		dispatcher: opts.Dispatcher,
		clock:      opts.Clock,
		validate:   opts.Validator,
		loader:     storygroup.NewLoader(opts.Backend, opts.Clock, opts.Logger),
		limiter:    ratelimit.NewInMemoryLimiter(cfg.Location.UserRequests, cfg.Location.UserPer, cfg.Location.UserBurst),
		viewerCfg:  viewerCfg,
		stickerCfg: stickerCfg,
		root:       opts.Logger,
		logger:     opts.Logger.WithComponent("Engine"),
	}
}

// NewComposer starts an empty text card for authorID. Callers set the
// canvas rectangle with SetContainer once it is laid out.
func (e *Engine) NewComposer(authorID string) *composer.Composer {
	return composer.New(composer.Opts{
		AuthorID:  authorID,
		Backend:   e.backend,
		Locations: e.locations,
		Limiter:   e.limiter,
		Validator: e.validate,
		Logger:    e.root,
		Sticker:   e.stickerCfg,
	})
}

// Rings lists the owners with active stories and whether the viewer has
// anything left to watch in each.
func (e *Engine) Rings(ctx context.Context, viewerID string, followed []string) ([]Ring, error) {
	feed, err := e.loader.Load(ctx, viewerID, followed)
	if err != nil {
		return nil, err
	}
	seen := e.loader.Seen(ctx, viewerID, feed)

	return lo.Map(feed.Groups, func(g storygroup.Group, _ int) Ring {
		return Ring{
			OwnerID:   g.OwnerID,
			Count:     len(g.Stories),
			HasUnseen: feed.HasUnseen(g.OwnerID, seen),
		}
	}), nil
}

// OpenViewer loads the feed and starts playback at startStoryID.
func (e *Engine) OpenViewer(ctx context.Context, viewerID string, followed []string, startStoryID string) (*playback.Viewer, error) {
	feed, err := e.loader.Load(ctx, viewerID, followed)
	if err != nil {
		return nil, err
	}
	return e.start(ctx, viewerID, feed, startStoryID)
}

// OpenOwnerEntry starts playback at the owner's first story the viewer has
// not seen yet, or at their first story when all are seen.
func (e *Engine) OpenOwnerEntry(ctx context.Context, viewerID string, followed []string, ownerID string) (*playback.Viewer, error) {
	feed, err := e.loader.Load(ctx, viewerID, followed)
	if err != nil {
		return nil, err
	}

	idx := feed.FirstUnseen(ownerID, e.loader.Seen(ctx, viewerID, feed))
	if idx < 0 {
		return nil, ErrNoStories
	}
	return e.start(ctx, viewerID, feed, feed.Flat[idx].ID)
}

// start detaches the session from ctx: the viewer and its driver live until
// Close, not until the request that opened them ends. Values on ctx are kept.
func (e *Engine) start(ctx context.Context, viewerID string, feed storygroup.Feed, startStoryID string) (*playback.Viewer, error) {
	session := context.WithoutCancel(ctx)

	v, err := playback.New(session, playback.Opts{
		ViewerID:     viewerID,
		Feed:         feed,
		StartStoryID: startStoryID,
		Backend:      e.backend,
		Dispatcher:   e.dispatcher,
		Clock:        e.clock,
		Logger:       e.root,
		Config:       e.viewerCfg,
	})
	if err != nil {
		return nil, err
	}

	playback.NewDriver(v, e.clock, e.viewerCfg.TickInterval).Start(session)
	e.logger.Debug("Viewer opened", "viewer_id", viewerID, "story_id", startStoryID, "stories", feed.Len())
	return v, nil
}
