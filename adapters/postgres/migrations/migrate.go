package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrator handles database schema migrations
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

var statements = []string{
	`CREATE TABLE IF NOT EXISTS saved_datasets (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		columns JSONB NOT NULL,
		data JSONB NOT NULL,
		row_count INTEGER NOT NULL DEFAULT 0,
		template_name TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_datasets_owner
		ON saved_datasets (owner_id, created_at DESC)`,
}

// Up executes all migrations. Statements are idempotent, so re-running on
// boot is safe.
func (m *Migrator) Up(ctx context.Context) error {
	for i, stmt := range statements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", i+1, err)
		}
	}
	return nil
}
