package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ingest_runs (
		id                TEXT PRIMARY KEY,
		started_at        TEXT NOT NULL,
		resolved_path     TEXT NOT NULL DEFAULT '',
		used_temp_copy    INTEGER NOT NULL DEFAULT 0,
		attempts          INTEGER NOT NULL DEFAULT 0 CHECK(attempts >= 0),
		success           INTEGER NOT NULL DEFAULT 0,
		error             TEXT NOT NULL DEFAULT '',
		work_items        INTEGER NOT NULL DEFAULT 0,
		scheduled_entries INTEGER NOT NULL DEFAULT 0,
		actual_runs       INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ingest_runs_started ON ingest_runs(started_at)`,

	`CREATE TABLE IF NOT EXISTS ingest_line_counts (
		ingest_id     TEXT NOT NULL REFERENCES ingest_runs(id) ON DELETE CASCADE,
		product_line  TEXT NOT NULL,
		runs_from_id  INTEGER NOT NULL DEFAULT 0,
		rows_expanded INTEGER NOT NULL DEFAULT 0,
		UNIQUE(ingest_id, product_line)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ingest_line_counts_ingest ON ingest_line_counts(ingest_id)`,
}
