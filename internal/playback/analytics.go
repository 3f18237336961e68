package playback

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/orgball2608/story-engine/internal/backend"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/samber/lo"
)

// ViewerEntry is one row of the owner's analytics panel.
type ViewerEntry struct {
	ViewerID string
	Profile  domain.Profile
	ViewedAt time.Time
	Liked    bool
}

// LoadAnalytics lists who viewed the story, newest view first, and marks the
// viewers who also liked it. No likers or profiles are fetched for a story
// nobody has viewed.
func LoadAnalytics(ctx context.Context, client backend.Client, storyID string) ([]ViewerEntry, error) {
	views, err := client.ListViewers(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list viewers: %w", err)
	}
	if len(views) == 0 {
		return []ViewerEntry{}, nil
	}

	likers, err := client.ListLikers(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", err)
	}

	views = lo.UniqBy(views, func(v domain.View) string {
		return v.ViewerID + "|" + v.ViewedAt.UTC().Format(time.RFC3339Nano)
	})
	ids := lo.Uniq(lo.Map(views, func(v domain.View, _ int) string { return v.ViewerID }))

	profiles, err := client.ResolveProfiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profiles: %w", err)
	}

	return MergeAnalytics(views, likers, profiles), nil
}

// MergeAnalytics joins views with likers and profiles. Viewers without a
// resolved profile keep a bare profile carrying their id.
func MergeAnalytics(views []domain.View, likers []string, profiles map[string]domain.Profile) []ViewerEntry {
	liked := lo.SliceToMap(likers, func(id string) (string, bool) { return id, true })

	entries := lo.Map(views, func(v domain.View, _ int) ViewerEntry {
		p, ok := profiles[v.ViewerID]
		if !ok {
			p = domain.Profile{ID: v.ViewerID}
		}
		return ViewerEntry{
			ViewerID: v.ViewerID,
			Profile:  p,
			ViewedAt: v.ViewedAt,
			Liked:    liked[v.ViewerID],
		}
	})

	slices.SortStableFunc(entries, func(a, b ViewerEntry) int {
		return b.ViewedAt.Compare(a.ViewedAt)
	})
	return entries
}
