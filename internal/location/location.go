package location

import (
	"context"
	"errors"

	"github.com/orgball2608/story-engine/internal/domain"
)

var (
	ErrEmptyQuery = errors.New("location query is required")
	ErrLookup     = errors.New("location lookup failed")
)

//go:generate go run go.uber.org/mock/mockgen -source=location.go -destination=mocks/mock.go

// Client searches places for location stickers.
type Client interface {
	Search(ctx context.Context, query string) ([]domain.Place, error)
}
