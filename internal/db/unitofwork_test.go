package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertIngest(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO ingest_runs (id, started_at) VALUES (?, '2025-01-06T00:00:00Z')`, id)
	return err
}

func countIngests(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM ingest_runs`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertIngest(ctx, tx, "i1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countIngests(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertIngest(ctx, tx, "i2"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countIngests(t, database), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertIngest(ctx, tx, "i3"); err != nil {
			return err
		}
		for i := 0; i < 2; i++ {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO ingest_line_counts (ingest_id, product_line) VALUES ('i3', '40')`); err != nil {
				return err
			}
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 0, countIngests(t, database))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertIngest(ctx, tx, "i4")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countIngests(t, database), "row should not exist after panic rollback")
}
