package playback

import (
	"testing"
	"time"

	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMergeAnalytics(t *testing.T) {
	views := []domain.View{
		{ViewerID: "old", ViewedAt: t0},
		{ViewerID: "new", ViewedAt: t0.Add(time.Hour)},
		{ViewerID: "mid", ViewedAt: t0.Add(time.Minute)},
	}
	profiles := map[string]domain.Profile{
		"new": {ID: "new", DisplayName: "Newest", AvatarRef: "avatars/new.png"},
	}

	got := MergeAnalytics(views, []string{"old", "ghost"}, profiles)

	assert.Equal(t, []ViewerEntry{
		{ViewerID: "new", Profile: profiles["new"], ViewedAt: t0.Add(time.Hour)},
		{ViewerID: "mid", Profile: domain.Profile{ID: "mid"}, ViewedAt: t0.Add(time.Minute)},
		{ViewerID: "old", Profile: domain.Profile{ID: "old"}, ViewedAt: t0, Liked: true},
	}, got)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "paused_by_hold", StatePausedByHold.String())
	assert.True(t, StatePausedByDeleteConfirm.Paused())
	assert.False(t, StatePlaying.Paused())
	assert.False(t, StateClosed.Paused())
}
