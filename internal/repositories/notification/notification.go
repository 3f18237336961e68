package notification

import (
	"context"
	"errors"

	"github.com/orgball2608/story-engine/internal/domain"
)

var ErrCannotCreate = errors.New("error create notification")

//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=mocks/mock.go

type Repository interface {
	Create(ctx context.Context, n domain.Notification) error
}
