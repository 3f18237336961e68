package like

import (
	"context"
	"errors"
)

var ErrCannotCreate = errors.New("error create like")

//go:generate go run go.uber.org/mock/mockgen -source=like.go -destination=mocks/mock.go

type Repository interface {
	// Like is a no-op when the pair already exists.
	Like(ctx context.Context, storyID, userID string) error
	Unlike(ctx context.Context, storyID, userID string) error
	Count(ctx context.Context, storyID string) (int, error)
	Exists(ctx context.Context, storyID, userID string) (bool, error)
	ListUserIDs(ctx context.Context, storyID string) ([]string, error)
}
