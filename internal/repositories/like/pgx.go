package like

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
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
		logger: logger.WithComponent("LikeRepository"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Like(ctx context.Context, storyID, userID string) error {
	query, args, err := repository.SqBuilder.
		Insert("story_likes").
		Columns("story_id", "user_id", "created_at").
		Values(storyID, userID, time.Now().UTC()).
		Suffix("ON CONFLICT (story_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return errors.Join(err, ErrCannotCreate)
	}

	return nil
}

func (r *PgxRepository) Unlike(ctx context.Context, storyID, userID string) error {
	query, args, err := repository.SqBuilder.
		Delete("story_likes").
		Where(sq.Eq{"story_id": storyID, "user_id": userID}).
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

func (r *PgxRepository) Count(ctx context.Context, storyID string) (int, error) {
	query, args, err := repository.SqBuilder.
		Select("COUNT(*)").
		From("story_likes").
		Where(sq.Eq{"story_id": storyID}).
		ToSql()
	if err != nil {
		return 0, repository.ErrBadQuery
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

func (r *PgxRepository) Exists(ctx context.Context, storyID, userID string) (bool, error) {
	sub := repository.SqBuilder.
		Select("1").
		From("story_likes").
		Where(sq.Eq{"story_id": storyID, "user_id": userID})

	query, args, err := repository.SqBuilder.
		Select().
		Column(sq.Expr("EXISTS(?)", sub)).
		ToSql()
	if err != nil {
		return false, repository.ErrBadQuery
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

func (r *PgxRepository) ListUserIDs(ctx context.Context, storyID string) ([]string, error) {
	query, args, err := repository.SqBuilder.
		Select("user_id").
		From("story_likes").
		Where(sq.Eq{"story_id": storyID}).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query likers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liker: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
