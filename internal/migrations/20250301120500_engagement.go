package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upEngagement, downEngagement)
}

func upEngagement(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE story_views (
		id BIGSERIAL PRIMARY KEY,
		story_id UUID NOT NULL REFERENCES stories (id) ON DELETE CASCADE,
		viewer_id VARCHAR NOT NULL,
		viewed_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX story_views_story_idx ON story_views (story_id, viewed_at DESC);
	CREATE INDEX story_views_viewer_idx ON story_views (viewer_id, story_id);

	CREATE TABLE story_likes (
		story_id UUID NOT NULL REFERENCES stories (id) ON DELETE CASCADE,
		user_id VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		PRIMARY KEY (story_id, user_id)
	);

	CREATE TABLE notifications (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		actor_id VARCHAR NOT NULL,
		kind VARCHAR NOT NULL,
		message TEXT NOT NULL,
		story_id UUID,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX notifications_user_idx ON notifications (user_id, created_at DESC);
	`)
	return err
}

func downEngagement(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE notifications;
	DROP TABLE story_likes;
	DROP TABLE story_views;
	`)
	return err
}
