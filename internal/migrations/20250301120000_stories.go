package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upStories, downStories)
}

func upStories(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE profiles (
		id VARCHAR PRIMARY KEY,
		display_name VARCHAR NOT NULL,
		avatar_ref VARCHAR
	);

	CREATE TABLE stories (
		id UUID PRIMARY KEY,
		owner_id VARCHAR NOT NULL,
		media_type VARCHAR NOT NULL CHECK (media_type IN ('image', 'video', 'text')),
		media_ref VARCHAR,
		text_content TEXT,
		duration_seconds INTEGER NOT NULL CHECK (duration_seconds > 0),
		stickers JSONB NOT NULL DEFAULT '[]',
		background VARCHAR,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX stories_owner_created_idx ON stories (owner_id, created_at);
	CREATE INDEX stories_expires_idx ON stories (expires_at);
	`)
	return err
}

func downStories(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE stories;
	DROP TABLE profiles;
	`)
	return err
}
