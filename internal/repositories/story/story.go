package story

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/story-engine/internal/domain"
)

var ErrNotFound = errors.New("story not found")
var ErrCannotCreate = errors.New("error create story")

//go:generate go run go.uber.org/mock/mockgen -source=story.go -destination=mocks/mock.go

type Repository interface {
	Create(ctx context.Context, story domain.Story) error
	GetByID(ctx context.Context, id string) (*domain.Story, error)
	Delete(ctx context.Context, id string) error
	// ListActive returns the owners' stories still active at now, oldest first.
	ListActive(ctx context.Context, ownerIDs []string, now time.Time) ([]domain.Story, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
