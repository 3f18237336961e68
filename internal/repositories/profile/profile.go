package profile

import (
	"context"

	"github.com/orgball2608/story-engine/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=mocks/mock.go

type Repository interface {
	// GetByIDs skips unknown ids.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Profile, error)
}
