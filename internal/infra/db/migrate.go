package db

import (
	"context"
	"database/sql"
	"fmt"
)

// title is UNIQUE so that re-submitting the same note is reported as a
// conflict instead of silently creating a second row.
var schema = map[Dialect][]string{
	Postgres: {
		`
CREATE TABLE IF NOT EXISTS notes (
    id           VARCHAR(36)  PRIMARY KEY,
    title        VARCHAR(255) NOT NULL UNIQUE,
    content      TEXT         NOT NULL,
    is_published BOOLEAN      NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ  NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ  NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at DESC)`,
	},
	SQLite: {
		`
CREATE TABLE IF NOT EXISTS notes (
    id           TEXT     PRIMARY KEY NOT NULL,
    title        TEXT     NOT NULL UNIQUE,
    content      TEXT     NOT NULL,
    is_published INTEGER  NOT NULL DEFAULT 0 CHECK (is_published IN (0, 1)),
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at DESC)`,
	},
}

// MigrateUp creates the notes table and its indexes. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts, ok := schema[dialect]
	if !ok {
		return fmt.Errorf("migrate: unknown dialect %q", dialect)
	}
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s step %d: %w", dialect, i+1, err)
		}
	}
	return nil
}
