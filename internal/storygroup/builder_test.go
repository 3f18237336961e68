package storygroup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	mock_backend "github.com/orgball2608/story-engine/internal/backend/mocks"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

func story(id, owner string, minute int) domain.Story {
	created := t0.Add(time.Duration(minute) * time.Minute)
	return domain.Story{
		ID:              id,
		OwnerID:         owner,
		MediaType:       domain.MediaTypeText,
		DurationSeconds: 10,
		CreatedAt:       created,
		ExpiresAt:       created.Add(domain.StoryTTL),
	}
}

func ids(stories []domain.Story) []string {
	out := make([]string, len(stories))
	for i, s := range stories {
		out[i] = s.ID
	}
	return out
}

func TestBuildGroupsByOwnerInCreationOrder(t *testing.T) {
	in := []domain.Story{
		story("b2", "bob", 20),
		story("a1", "alice", 5),
		story("c1", "carol", 1),
		story("b1", "bob", 10),
		story("a2", "alice", 30),
	}

	f := Build(in)

	require.Len(t, f.Groups, 3)
	assert.Equal(t, "alice", f.Groups[0].OwnerID)
	assert.Equal(t, []string{"a1", "a2"}, ids(f.Groups[0].Stories))
	assert.Equal(t, "bob", f.Groups[1].OwnerID)
	assert.Equal(t, []string{"b1", "b2"}, ids(f.Groups[1].Stories))
	assert.Equal(t, []string{"c1"}, ids(f.Groups[2].Stories))
	assert.Equal(t, []string{"a1", "a2", "b1", "b2", "c1"}, ids(f.Flat))

	// input untouched
	assert.Equal(t, "b2", in[0].ID)
}

func TestBuildIsIdempotent(t *testing.T) {
	in := []domain.Story{
		story("x", "o2", 3), story("y", "o1", 3), story("z", "o2", 1), story("w", "o1", 3),
	}

	first := Build(in)
	second := Build(in)
	again := Build(first.Flat)

	assert.Equal(t, first, second)
	assert.Equal(t, ids(first.Flat), ids(again.Flat))
	assert.Equal(t, first.Groups, again.Groups)
}

func TestBuildEmpty(t *testing.T) {
	f := Build(nil)
	assert.True(t, f.Empty())
	assert.Empty(t, f.Groups)
	_, _, ok := f.Locate(0)
	assert.False(t, ok)
}

func TestLocate(t *testing.T) {
	f := Build([]domain.Story{
		story("a1", "alice", 1), story("a2", "alice", 2), story("b1", "bob", 1),
		story("c1", "carol", 1), story("c2", "carol", 2), story("c3", "carol", 3),
	})

	tests := []struct {
		flat  int
		owner string
		local int
	}{
		{0, "alice", 0}, {1, "alice", 1}, {2, "bob", 0}, {3, "carol", 0}, {5, "carol", 2},
	}
	for _, tt := range tests {
		g, local, ok := f.Locate(tt.flat)
		require.True(t, ok)
		assert.Equal(t, tt.owner, g.OwnerID, "flat %d", tt.flat)
		assert.Equal(t, tt.local, local, "flat %d", tt.flat)
	}

	_, _, ok := f.Locate(6)
	assert.False(t, ok)
	_, _, ok = f.Locate(-1)
	assert.False(t, ok)
}

func TestFirstUnseen(t *testing.T) {
	f := Build([]domain.Story{
		story("a1", "alice", 1), story("b1", "bob", 1), story("b2", "bob", 2), story("b3", "bob", 3),
	})

	assert.Equal(t, 1, f.FirstUnseen("bob", nil))
	assert.Equal(t, 2, f.FirstUnseen("bob", map[string]bool{"b1": true}))
	assert.Equal(t, 3, f.FirstUnseen("bob", map[string]bool{"b1": true, "b2": true}))
	assert.Equal(t, 1, f.FirstUnseen("bob", map[string]bool{"b1": true, "b2": true, "b3": true}))
	assert.Equal(t, -1, f.FirstUnseen("nobody", nil))

	assert.True(t, f.HasUnseen("bob", map[string]bool{"b1": true}))
	assert.False(t, f.HasUnseen("alice", map[string]bool{"a1": true}))
}

func TestWithout(t *testing.T) {
	f := Build([]domain.Story{story("a1", "alice", 1), story("b1", "bob", 1), story("b2", "bob", 2)})

	g := f.Without("a1")
	assert.Equal(t, []string{"b1", "b2"}, ids(g.Flat))
	require.Len(t, g.Groups, 1)
	assert.Equal(t, "bob", g.Groups[0].OwnerID)

	assert.Equal(t, f, f.Without("missing"))
	assert.Len(t, f.Flat, 3)
}

func TestLoaderFiltersExpiredAndUnrelated(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_backend.NewMockClient(ctrl)
	clock := clockwork.NewFakeClockAt(t0.Add(2 * time.Hour))

	expired := story("old", "bob", 0)
	expired.ExpiresAt = t0.Add(time.Hour)

	source.EXPECT().
		ListActiveStories(gomock.Any(), "me", []string{"bob"}).
		Return([]domain.Story{
			story("b1", "bob", 10),
			expired,
			story("m1", "me", 5),
			story("s1", "stranger", 1),
		}, nil)

	l := NewLoader(source, clock, logger.NewNop())
	f, err := l.Load(context.Background(), "me", []string{"bob"})
	require.NoError(t, err)

	assert.Equal(t, []string{"b1", "m1"}, ids(f.Flat))
}

func TestLoaderPropagatesSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_backend.NewMockClient(ctrl)
	source.EXPECT().ListActiveStories(gomock.Any(), "me", gomock.Nil()).Return(nil, errors.New("boom"))

	l := NewLoader(source, clockwork.NewFakeClockAt(t0), logger.NewNop())
	_, err := l.Load(context.Background(), "me", nil)
	assert.Error(t, err)
}

func TestLoaderSeenDegradesOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_backend.NewMockClient(ctrl)
	f := Build([]domain.Story{story("a1", "alice", 1), story("a2", "alice", 2)})

	source.EXPECT().ViewedStories(gomock.Any(), "me", []string{"a1", "a2"}).Return(map[string]bool{"a1": true}, nil)
	source.EXPECT().ViewedStories(gomock.Any(), "me", gomock.Any()).Return(nil, errors.New("down"))

	l := NewLoader(source, clockwork.NewFakeClockAt(t0), logger.NewNop())
	assert.Equal(t, map[string]bool{"a1": true}, l.Seen(context.Background(), "me", f))
	assert.Empty(t, l.Seen(context.Background(), "me", f))
}
