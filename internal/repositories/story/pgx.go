package story

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/story-engine/internal/domain"
	"github.com/orgball2608/story-engine/internal/repository"
	"github.com/orgball2608/story-engine/pkg/logger"
)

var columns = []string{
	"id", "owner_id", "media_type", "media_ref", "text_content",
	"duration_seconds", "stickers", "background", "created_at", "expires_at",
}

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("StoryRepository"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Create(ctx context.Context, story domain.Story) error {
	stickers := story.Stickers
	if stickers == nil {
		stickers = []domain.Sticker{}
	}

	query, args, err := repository.SqBuilder.
		Insert("stories").
		Columns(columns...).
		Values(
			story.ID,
			story.OwnerID,
			string(story.MediaType),
			repository.Nullable(story.MediaRef),
			repository.Nullable(story.TextContent),
			story.DurationSeconds,
			stickers,
			repository.Nullable(story.Background),
			story.CreatedAt,
			story.ExpiresAt,
		).ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return errors.Join(err, ErrCannotCreate)
	}

	return nil
}

func (r *PgxRepository) GetByID(ctx context.Context, id string) (*domain.Story, error) {
	query, args, err := repository.SqBuilder.
		Select(columns...).
		From("stories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	story, err := scanStory(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story by id: %w", err)
	}

	return story, nil
}

func (r *PgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := repository.SqBuilder.
		Delete("stories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PgxRepository) ListActive(ctx context.Context, ownerIDs []string, now time.Time) ([]domain.Story, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}

	query, args, err := repository.SqBuilder.
		Select(columns...).
		From("stories").
		Where(sq.Eq{"owner_id": ownerIDs}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active stories: %w", err)
	}
	defer rows.Close()

	var stories []domain.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan story row: %w", err)
		}
		stories = append(stories, *story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating story rows: %w", err)
	}

	return stories, nil
}

// DeleteExpired removes stories past their expiry. Views and likes go with
// them through ON DELETE CASCADE.
func (r *PgxRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := repository.SqBuilder.
		Delete("stories").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, repository.ErrBadQuery
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired stories: %w", err)
	}

	deleted := tag.RowsAffected()
	if deleted > 0 {
		r.logger.Info("Expired stories deleted", "count", deleted)
	}
	return deleted, nil
}

func scanStory(row pgx.Row) (*domain.Story, error) {
	var (
		story                      domain.Story
		mediaType                  string
		mediaRef, text, background *string
	)
	err := row.Scan(
		&story.ID,
		&story.OwnerID,
		&mediaType,
		&mediaRef,
		&text,
		&story.DurationSeconds,
		&story.Stickers,
		&background,
		&story.CreatedAt,
		&story.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	story.MediaType = domain.MediaType(mediaType)
	story.MediaRef = repository.Deref(mediaRef)
	story.TextContent = repository.Deref(text)
	story.Background = repository.Deref(background)
	return &story, nil
}
