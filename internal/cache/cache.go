package cache

import (
	"context"
	"errors"

	"github.com/orgball2608/story-engine/internal/domain"
)

var ErrCache = errors.New("profile cache unavailable")

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock.go

// ProfileCache is a read-through cache in front of the profile repository.
type ProfileCache interface {
	// GetProfiles returns the cached profiles and the ids that missed.
	GetProfiles(ctx context.Context, ids []string) (map[string]domain.Profile, []string, error)
	SetProfiles(ctx context.Context, profiles []domain.Profile) error
}

// Nop never hits. Used when no redis address is configured.
type Nop struct{}

func (Nop) GetProfiles(_ context.Context, ids []string) (map[string]domain.Profile, []string, error) {
	return map[string]domain.Profile{}, ids, nil
}

func (Nop) SetProfiles(context.Context, []domain.Profile) error {
	return nil
}
