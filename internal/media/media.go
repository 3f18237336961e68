package media

import (
	"context"
	"errors"
)

var ErrUpload = errors.New("media upload failed")

//go:generate go run go.uber.org/mock/mockgen -source=media.go -destination=mocks/mock.go

// Storage keeps uploaded story media and hands back a public reference.
type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
