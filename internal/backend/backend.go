package backend

import (
	"context"
	"errors"

	"github.com/orgball2608/story-engine/internal/domain"
)

var (
	ErrStoryNotFound = errors.New("story not found")
	ErrInvalidDraft  = errors.New("invalid story draft")
)

//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock.go

// Client is the persistence collaborator the engine runs against.
type Client interface {
	CreateStory(ctx context.Context, draft domain.StoryDraft) (string, error)
	DeleteStory(ctx context.Context, storyID string) error

	// RecordView is duplicate tolerant; callers do not dedupe.
	RecordView(ctx context.Context, storyID, viewerID string) error
	CountViews(ctx context.Context, storyID string) (int, error)
	CountLikes(ctx context.Context, storyID string) (int, error)
	HasLiked(ctx context.Context, storyID, viewerID string) (bool, error)
	LikeStory(ctx context.Context, storyID, viewerID string) error
	UnlikeStory(ctx context.Context, storyID, viewerID string) error

	// ListViewers returns views newest first.
	ListViewers(ctx context.Context, storyID string) ([]domain.View, error)
	ListLikers(ctx context.Context, storyID string) ([]string, error)
	// ViewedStories reports which of storyIDs the viewer has already seen.
	ViewedStories(ctx context.Context, viewerID string, storyIDs []string) (map[string]bool, error)

	ResolveProfiles(ctx context.Context, ids []string) (map[string]domain.Profile, error)
	EmitNotification(ctx context.Context, n domain.Notification) error

	ListActiveStories(ctx context.Context, viewerID string, followedOwnerIDs []string) ([]domain.Story, error)
	UploadMedia(ctx context.Context, file domain.MediaFile) (string, error)
}
