package view

import (
	"context"
	"errors"

	"github.com/orgball2608/story-engine/internal/domain"
)

var ErrCannotCreate = errors.New("error record view")

//go:generate go run go.uber.org/mock/mockgen -source=view.go -destination=mocks/mock.go

type Repository interface {
	// Record appends a view row. Repeated views are kept.
	Record(ctx context.Context, storyID string, view domain.View) error
	CountViewers(ctx context.Context, storyID string) (int, error)
	ListByStory(ctx context.Context, storyID string) ([]domain.View, error)
	SeenStoryIDs(ctx context.Context, viewerID string, storyIDs []string) ([]string, error)
}
