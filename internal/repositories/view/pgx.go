package view

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
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
		logger: logger.WithComponent("ViewRepository"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Record(ctx context.Context, storyID string, view domain.View) error {
	query, args, err := repository.SqBuilder.
		Insert("story_views").
		Columns("story_id", "viewer_id", "viewed_at").
		Values(storyID, view.ViewerID, view.ViewedAt).
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return errors.Join(err, ErrCannotCreate)
	}

	return nil
}

func (r *PgxRepository) CountViewers(ctx context.Context, storyID string) (int, error) {
	query, args, err := repository.SqBuilder.
		Select("COUNT(DISTINCT viewer_id)").
		From("story_views").
		Where(sq.Eq{"story_id": storyID}).
		ToSql()
	if err != nil {
		return 0, repository.ErrBadQuery
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count viewers: %w", err)
	}

	return count, nil
}

func (r *PgxRepository) ListByStory(ctx context.Context, storyID string) ([]domain.View, error) {
	query, args, err := repository.SqBuilder.
		Select("viewer_id", "viewed_at").
		From("story_views").
		Where(sq.Eq{"story_id": storyID}).
		OrderBy("viewed_at DESC").
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query views: %w", err)
	}
	defer rows.Close()

	var views []domain.View
	for rows.Next() {
		var v domain.View
		if err := rows.Scan(&v.ViewerID, &v.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan view row: %w", err)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating view rows: %w", err)
	}

	return views, nil
}

func (r *PgxRepository) SeenStoryIDs(ctx context.Context, viewerID string, storyIDs []string) ([]string, error) {
	if len(storyIDs) == 0 {
		return nil, nil
	}

	query, args, err := repository.SqBuilder.
		Select("DISTINCT story_id").
		From("story_views").
		Where(sq.Eq{"viewer_id": viewerID, "story_id": storyIDs}).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query seen stories: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan story id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
