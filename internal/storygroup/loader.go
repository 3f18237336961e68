package storygroup

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/samber/lo"
)

// Source is the slice of the persistence collaborator the loader needs.
type Source interface {
	ListActiveStories(ctx context.Context, viewerID string, followedOwnerIDs []string) ([]domain.Story, error)
	ViewedStories(ctx context.Context, viewerID string, storyIDs []string) (map[string]bool, error)
}

type Loader struct {
	source Source
	clock  clockwork.Clock
	logger logger.Logger
}

func NewLoader(source Source, clock clockwork.Clock, log logger.Logger) *Loader {
	return &Loader{
		source: source,
		clock:  clock,
		logger: log.WithComponent("StoryGroupLoader"),
	}
}

// Load fetches the viewer's story feed: their own active stories plus those
// of followed owners. Expired stories are dropped even if the source returned them.
func (l *Loader) Load(ctx context.Context, viewerID string, followedOwnerIDs []string) (Feed, error) {
	stories, err := l.source.ListActiveStories(ctx, viewerID, followedOwnerIDs)
	if err != nil {
		return Feed{}, fmt.Errorf("failed to list active stories: %w", err)
	}

	allowed := lo.SliceToMap(append([]string{viewerID}, followedOwnerIDs...), func(id string) (string, struct{}) {
		return id, struct{}{}
	})
	now := l.clock.Now()

	relevant := lo.Filter(stories, func(s domain.Story, _ int) bool {
		_, ok := allowed[s.OwnerID]
		return ok && s.IsActive(now)
	})
	if dropped := len(stories) - len(relevant); dropped > 0 {
		l.logger.Debug("Dropped stories outside the viewer's feed", "viewer_id", viewerID, "dropped", dropped)
	}

	return Build(relevant), nil
}

// Seen returns the set of feed stories the viewer has already viewed. Errors
// degrade to an empty set so the entry point falls back to the first story.
func (l *Loader) Seen(ctx context.Context, viewerID string, feed Feed) map[string]bool {
	if feed.Empty() {
		return map[string]bool{}
	}
	ids := lo.Map(feed.Flat, func(s domain.Story, _ int) string { return s.ID })
	seen, err := l.source.ViewedStories(ctx, viewerID, ids)
	if err != nil {
		l.logger.Warn("Failed to load viewed stories", "viewer_id", viewerID, "error", err)
		return map[string]bool{}
	}
	return seen
}
