package backendimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-engine/internal/backend"
	"github.com/orgball2608/story-engine/internal/cache"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/media"
	"github.com/orgball2608/story-engine/internal/repositories/like"
	"github.com/orgball2608/story-engine/internal/repositories/notification"
	"github.com/orgball2608/story-engine/internal/repositories/profile"
	"github.com/orgball2608/story-engine/internal/repositories/story"
	"github.com/orgball2608/story-engine/internal/repositories/view"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/errors"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Stories       story.Repository
	Views         view.Repository
	Likes         like.Repository
	Notifications notification.Repository
	Profiles      profile.Repository
	Media         media.Storage
	Cache         cache.ProfileCache
	Validator     *validator.Validate
	Clock         clockwork.Clock
	Config        *config.Config
	Logger        logger.Logger
}

type Impl struct {
	stories       story.Repository
	views         view.Repository
	likes         like.Repository
	notifications notification.Repository
	profiles      profile.Repository
	media         media.Storage
	cache         cache.ProfileCache
	validate      *validator.Validate
	clock         clockwork.Clock
	ttl           time.Duration
	logger        logger.Logger
}

var _ backend.Client = (*Impl)(nil)

func New(opts Opts) *Impl {
	ttl := domain.StoryTTL
	if opts.Config != nil && opts.Config.Story.TTL > 0 {
		ttl = opts.Config.Story.TTL
	}

	return &Impl{
		stories:       opts.Stories,
		views:         opts.Views,
		likes:         opts.Likes,
		notifications: opts.Notifications,
		profiles:      opts.Profiles,
		media:         opts.Media,
		cache:         opts.Cache,
		validate:      opts.Validator,
		clock:         opts.Clock,
		ttl:           ttl,
		logger:        opts.Logger.WithComponent("Backend"),
	}
}

func (i *Impl) CreateStory(ctx context.Context, draft domain.StoryDraft) (string, error) {
	if err := i.validate.Struct(draft); err != nil {
		return "", errors.Join(backend.ErrInvalidDraft, err)
	}

	now := i.clock.Now().UTC()
	s := domain.Story{
		ID:              uuid.NewString(),
		OwnerID:         draft.OwnerID,
		MediaType:       draft.MediaType,
		MediaRef:        draft.MediaRef,
		TextContent:     draft.TextContent,
		DurationSeconds: draft.DurationSeconds,
		Stickers:        draft.Stickers,
		Background:      draft.Background,
		CreatedAt:       now,
		ExpiresAt:       now.Add(i.ttl),
	}

	if err := i.stories.Create(ctx, s); err != nil {
		return "", fmt.Errorf("failed to create story: %w", err)
	}

	i.logger.Info("Story created", "story_id", s.ID, "owner_id", s.OwnerID, "media_type", s.MediaType)
	return s.ID, nil
}

func (i *Impl) DeleteStory(ctx context.Context, storyID string) error {
	if err := i.stories.Delete(ctx, storyID); err != nil {
		if errors.Is(err, story.ErrNotFound) {
			return backend.ErrStoryNotFound
		}
		return fmt.Errorf("failed to delete story: %w", err)
	}

	i.logger.Info("Story deleted", "story_id", storyID)
	return nil
}

func (i *Impl) RecordView(ctx context.Context, storyID, viewerID string) error {
	return i.views.Record(ctx, storyID, domain.View{
		ViewerID: viewerID,
		ViewedAt: i.clock.Now().UTC(),
	})
}

func (i *Impl) CountViews(ctx context.Context, storyID string) (int, error) {
	return i.views.CountViewers(ctx, storyID)
}

func (i *Impl) CountLikes(ctx context.Context, storyID string) (int, error) {
	return i.likes.Count(ctx, storyID)
}

func (i *Impl) HasLiked(ctx context.Context, storyID, viewerID string) (bool, error) {
	return i.likes.Exists(ctx, storyID, viewerID)
}

func (i *Impl) LikeStory(ctx context.Context, storyID, viewerID string) error {
	return i.likes.Like(ctx, storyID, viewerID)
}

func (i *Impl) UnlikeStory(ctx context.Context, storyID, viewerID string) error {
	return i.likes.Unlike(ctx, storyID, viewerID)
}

func (i *Impl) ListViewers(ctx context.Context, storyID string) ([]domain.View, error) {
	return i.views.ListByStory(ctx, storyID)
}

func (i *Impl) ListLikers(ctx context.Context, storyID string) ([]string, error) {
	return i.likes.ListUserIDs(ctx, storyID)
}

func (i *Impl) ViewedStories(ctx context.Context, viewerID string, storyIDs []string) (map[string]bool, error) {
	ids, err := i.views.SeenStoryIDs(ctx, viewerID, storyIDs)
	if err != nil {
		return nil, err
	}

	return lo.SliceToMap(ids, func(id string) (string, bool) {
		return id, true
	}), nil
}

// ResolveProfiles reads through the cache. Cache failures fall back to the
// repository; unknown ids are absent from the result.
func (i *Impl) ResolveProfiles(ctx context.Context, ids []string) (map[string]domain.Profile, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return map[string]domain.Profile{}, nil
	}

	found, missing, err := i.cache.GetProfiles(ctx, ids)
	if err != nil {
		i.logger.Warn("Profile cache read failed", "error", err)
		found, missing = map[string]domain.Profile{}, ids
	}
	if len(missing) == 0 {
		return found, nil
	}

	loaded, err := i.profiles.GetByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	if err := i.cache.SetProfiles(ctx, loaded); err != nil {
		i.logger.Warn("Profile cache write failed", "error", err)
	}

	for _, p := range loaded {
		found[p.ID] = p
	}
	return found, nil
}

func (i *Impl) EmitNotification(ctx context.Context, n domain.Notification) error {
	return i.notifications.Create(ctx, n)
}

func (i *Impl) ListActiveStories(ctx context.Context, viewerID string, followedOwnerIDs []string) ([]domain.Story, error) {
	owners := lo.Uniq(append([]string{viewerID}, followedOwnerIDs...))
	return i.stories.ListActive(ctx, owners, i.clock.Now().UTC())
}

func (i *Impl) UploadMedia(ctx context.Context, file domain.MediaFile) (string, error) {
	key := "stories/" + uuid.NewString()
	if ext := file.Ext(); ext != "" {
		key += "." + strings.ToLower(ext)
	}

	ref, err := i.media.Put(ctx, key, file.ContentType, file.Data)
	if err != nil {
		return "", err
	}

	i.logger.Info("Media uploaded", "key", key, "content_type", file.ContentType)
	return ref, nil
}
