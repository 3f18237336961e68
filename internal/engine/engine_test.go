package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	mock_backend "github.com/orgball2608/story-engine/internal/backend/mocks"
	"github.com/orgball2608/story-engine/internal/domain"
	mock_location "github.com/orgball2608/story-engine/internal/location/mocks"
	"github.com/orgball2608/story-engine/internal/playback"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/orgball2608/story-engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func story(id, owner string, minute int) domain.Story {
	created := t0.Add(time.Duration(minute) * time.Minute)
	return domain.Story{
		ID:              id,
		OwnerID:         owner,
		MediaType:       domain.MediaTypeImage,
		MediaRef:        "https://cdn/" + id,
		DurationSeconds: 10,
		CreatedAt:       created,
		ExpiresAt:       created.Add(domain.StoryTTL),
	}
}

func newEngine(t *testing.T) (*Engine, *mock_backend.MockClient) {
	e, client, _ := newEngineWithClock(t)
	return e, client
}

func newEngineWithClock(t *testing.T) (*Engine, *mock_backend.MockClient, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	client := mock_backend.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Story.TickInterval = 50 * time.Millisecond
	cfg.Location.UserRequests = 1
	cfg.Location.UserPer = time.Second
	cfg.Location.UserBurst = 1

	clock := clockwork.NewFakeClockAt(t0.Add(time.Hour))
	return New(Opts{
		Backend:    client,
		Locations:  mock_location.NewMockClient(ctrl),
		Dispatcher: playback.Inline{},
		Clock:      clock,
		Config:     cfg,
		Logger:     logger.NewNop(),
	}), client, clock
}

func expectEntry(client *mock_backend.MockClient, s domain.Story, viewerID string) {
	client.EXPECT().RecordView(gomock.Any(), s.ID, viewerID).Return(nil)
	client.EXPECT().CountViews(gomock.Any(), s.ID).Return(1, nil)
	client.EXPECT().CountLikes(gomock.Any(), s.ID).Return(0, nil)
	client.EXPECT().HasLiked(gomock.Any(), s.ID, viewerID).Return(false, nil)
	client.EXPECT().ResolveProfiles(gomock.Any(), []string{s.OwnerID}).Return(map[string]domain.Profile{}, nil)
}

func TestOpenOwnerEntryStartsAtFirstUnseen(t *testing.T) {
	e, client := newEngine(t)
	ctx := context.Background()

	a1, a2, a3 := story("a1", "alice", 0), story("a2", "alice", 1), story("a3", "alice", 2)
	client.EXPECT().ListActiveStories(gomock.Any(), "bob", []string{"alice"}).Return([]domain.Story{a1, a2, a3}, nil)
	client.EXPECT().ViewedStories(gomock.Any(), "bob", []string{"a1", "a2", "a3"}).
		Return(map[string]bool{"a1": true}, nil)
	expectEntry(client, a2, "bob")

	v, err := e.OpenOwnerEntry(ctx, "bob", []string{"alice"}, "alice")
	require.NoError(t, err)
	defer v.Close()

	cur, ok := v.Current()
	require.True(t, ok)
	assert.Equal(t, "a2", cur.ID)
	assert.Equal(t, playback.StatePlaying, v.State())
}

func TestOpenOwnerEntryAllSeenStartsAtFirst(t *testing.T) {
	e, client := newEngine(t)

	a1, a2 := story("a1", "alice", 0), story("a2", "alice", 1)
	client.EXPECT().ListActiveStories(gomock.Any(), "bob", []string{"alice"}).Return([]domain.Story{a2, a1}, nil)
	client.EXPECT().ViewedStories(gomock.Any(), "bob", []string{"a1", "a2"}).
		Return(map[string]bool{"a1": true, "a2": true}, nil)
	expectEntry(client, a1, "bob")

	v, err := e.OpenOwnerEntry(context.Background(), "bob", []string{"alice"}, "alice")
	require.NoError(t, err)
	defer v.Close()

	cur, _ := v.Current()
	assert.Equal(t, "a1", cur.ID)
}

func TestOpenOwnerEntryWithoutStories(t *testing.T) {
	e, client := newEngine(t)

	client.EXPECT().ListActiveStories(gomock.Any(), "bob", []string{"carol"}).
		Return([]domain.Story{story("a1", "alice", 0)}, nil)

	_, err := e.OpenOwnerEntry(context.Background(), "bob", []string{"carol"}, "carol")
	assert.ErrorIs(t, err, ErrNoStories)
}

func TestOpenViewerPropagatesLoadError(t *testing.T) {
	e, client := newEngine(t)

	cause := errors.New("db down")
	client.EXPECT().ListActiveStories(gomock.Any(), "bob", nil).Return(nil, cause)

	_, err := e.OpenViewer(context.Background(), "bob", nil, "a1")
	assert.ErrorIs(t, err, cause)
}

func TestOpenViewerUnknownStory(t *testing.T) {
	e, client := newEngine(t)

	client.EXPECT().ListActiveStories(gomock.Any(), "bob", []string{"alice"}).
		Return([]domain.Story{story("a1", "alice", 0)}, nil)

	_, err := e.OpenViewer(context.Background(), "bob", []string{"alice"}, "missing")
	assert.ErrorIs(t, err, playback.ErrStoryNotInFeed)
}

func TestRings(t *testing.T) {
	e, client := newEngine(t)

	stories := []domain.Story{story("a1", "alice", 0), story("a2", "alice", 1), story("c1", "carol", 2)}
	client.EXPECT().ListActiveStories(gomock.Any(), "bob", []string{"alice", "carol"}).Return(stories, nil)
	client.EXPECT().ViewedStories(gomock.Any(), "bob", []string{"a1", "a2", "c1"}).
		Return(map[string]bool{"c1": true}, nil)

	rings, err := e.Rings(context.Background(), "bob", []string{"alice", "carol"})
	require.NoError(t, err)
	assert.Equal(t, []Ring{
		{OwnerID: "alice", Count: 2, HasUnseen: true},
		{OwnerID: "carol", Count: 1, HasUnseen: false},
	}, rings)
}

func TestNewComposerStartsEmpty(t *testing.T) {
	e, _ := newEngine(t)

	c := e.NewComposer("alice")
	assert.Equal(t, domain.MediaTypeText, c.MediaType())
	assert.False(t, c.CanPublish())
	assert.Equal(t, "alice", c.Draft().OwnerID)
}

func TestViewerOutlivesOpeningContext(t *testing.T) {
	e, client, clock := newEngineWithClock(t)

	a1, a2 := story("a1", "alice", 0), story("a2", "alice", 1)
	a1.DurationSeconds = 1
	client.EXPECT().ListActiveStories(gomock.Any(), "bob", []string{"alice"}).Return([]domain.Story{a1, a2}, nil)
	expectEntry(client, a1, "bob")

	reqCtx, cancel := context.WithCancel(context.Background())
	v, err := e.OpenViewer(reqCtx, "bob", []string{"alice"}, "a1")
	require.NoError(t, err)
	defer v.Close()
	cancel()

	expectEntry(client, a2, "bob")

	wait, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	require.NoError(t, clock.BlockUntilContext(wait, 1))

	require.Eventually(t, func() bool {
		clock.Advance(50 * time.Millisecond)
		cur, _ := v.Current()
		return cur.ID == "a2"
	}, 5*time.Second, time.Millisecond)
}
