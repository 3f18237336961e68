package notification

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/repository"
	"github.com/orgball2608/story-engine/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("NotificationRepository"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Create(ctx context.Context, n domain.Notification) error {
	query, args, err := repository.SqBuilder.
		Insert("notifications").
		Columns("user_id", "actor_id", "kind", "message", "story_id", "created_at").
		Values(n.TargetUserID, n.ActorID, string(n.Kind), n.Message, repository.Nullable(n.StoryID), time.Now().UTC()).
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return errors.Join(err, ErrCannotCreate)
	}

	return nil
}
