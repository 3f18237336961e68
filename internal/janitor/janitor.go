package janitor

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=janitor.go -destination=mocks/mock.go

// Client purges stories whose time-to-live has passed.
type Client interface {
	Purge(ctx context.Context) (int64, error)
	// SchedulePurge runs Purge periodically until ctx is cancelled.
	SchedulePurge(ctx context.Context) error
}
