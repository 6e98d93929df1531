package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"ingest_runs", "ingest_line_counts"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_ingest_runs_started", "idx_ingest_line_counts_ingest"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_LineCountsRequireIngest(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO ingest_line_counts (ingest_id, product_line) VALUES ('missing', '40')`)
	assert.Error(t, err, "orphan line counts violate the foreign key")
}

func TestMigrate_LineCountsUniquePerIngest(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO ingest_runs (id, started_at) VALUES ('i1', '2025-01-06T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO ingest_line_counts (ingest_id, product_line) VALUES ('i1', '40')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO ingest_line_counts (ingest_id, product_line) VALUES ('i1', '40')`)
	assert.Error(t, err)
}

func TestMigrate_DeleteIngestCascades(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO ingest_runs (id, started_at) VALUES ('i1', '2025-01-06T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO ingest_line_counts (ingest_id, product_line) VALUES ('i1', '26')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM ingest_runs WHERE id = 'i1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM ingest_line_counts`).Scan(&n))
	assert.Equal(t, 0, n)
}
