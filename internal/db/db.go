package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/orgball2608/story-engine/internal/migrations"
	"github.com/orgball2608/story-engine/pkg/config"
	"github.com/pressly/goose/v3"
)

// Postgres is a database/sql handle used only for schema migrations.
type Postgres struct {
	db *sql.DB
}

func NewConnect(cfg *config.Config) (*Postgres, error) {
	connect, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	if err = connect.Ping(); err != nil {
		connect.Close()
		return nil, err
	}

	if err := goose.SetDialect("postgres"); err != nil {
		connect.Close()
		return nil, err
	}

	return &Postgres{db: connect}, nil
}

// Migrations are compiled in, so the directory argument is only a label.
const migrationsDir = "."

func (pg *Postgres) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, pg.db, migrationsDir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (pg *Postgres) Down(ctx context.Context) error {
	if err := goose.DownContext(ctx, pg.db, migrationsDir); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func (pg *Postgres) Status(ctx context.Context) error {
	return goose.StatusContext(ctx, pg.db, migrationsDir)
}

func (pg *Postgres) Reset(ctx context.Context) error {
	return goose.ResetContext(ctx, pg.db, migrationsDir)
}

func (pg *Postgres) Close() error {
	return pg.db.Close()
}
