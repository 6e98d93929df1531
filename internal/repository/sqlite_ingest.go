package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/domain"
)

// SQLiteIngestRepo implements IngestRepo using a SQLite database.
type SQLiteIngestRepo struct {
	db db.DBTX
}

// NewSQLiteIngestRepo creates a new SQLiteIngestRepo. conn may be a *sql.DB
// or a *sql.Tx handed out by a UnitOfWork.
func NewSQLiteIngestRepo(conn db.DBTX) *SQLiteIngestRepo {
	return &SQLiteIngestRepo{db: conn}
}

const ingestColumns = `id, started_at, resolved_path, used_temp_copy, attempts, success, error,
	work_items, scheduled_entries, actual_runs`

// Create inserts rec and its per-line counts. Callers wanting atomicity run
// it inside a UnitOfWork.
func (r *SQLiteIngestRepo) Create(ctx context.Context, rec *domain.IngestRecord) error {
	query := `INSERT INTO ingest_runs (` + ingestColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		formatTime(rec.StartedAt),
		rec.ResolvedPath,
		boolToInt(rec.UsedTempCopy),
		rec.Attempts,
		boolToInt(rec.Success),
		rec.Error,
		rec.WorkItems,
		rec.ScheduledEntries,
		rec.ActualRuns,
	)
	if err != nil {
		return fmt.Errorf("inserting ingest run: %w", err)
	}

	for _, lc := range rec.Lines {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO ingest_line_counts (ingest_id, product_line, runs_from_id, rows_expanded)
			VALUES (?, ?, ?, ?)`,
			rec.ID, string(lc.ProductLine), lc.RunsFromID, lc.RowsExpanded,
		)
		if err != nil {
			return fmt.Errorf("inserting line count %q: %w", lc.ProductLine, err)
		}
	}
	return nil
}

func (r *SQLiteIngestRepo) GetByID(ctx context.Context, id string) (*domain.IngestRecord, error) {
	query := `SELECT ` + ingestColumns + ` FROM ingest_runs WHERE id = ?`
	rec, err := scanIngest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ingest run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning ingest run: %w", err)
	}
	if err := r.loadLines(ctx, []*domain.IngestRecord{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteIngestRepo) ListRecent(ctx context.Context, limit int) ([]*domain.IngestRecord, error) {
	query := `SELECT ` + ingestColumns + ` FROM ingest_runs ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ingest runs: %w", err)
	}
	defer rows.Close()

	var out []*domain.IngestRecord
	for rows.Next() {
		rec, err := scanIngest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ingest run: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ingest runs: %w", err)
	}
	if err := r.loadLines(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIngest(s scanner) (*domain.IngestRecord, error) {
	var rec domain.IngestRecord
	var startedAt string
	var usedTemp, success int
	err := s.Scan(
		&rec.ID, &startedAt, &rec.ResolvedPath, &usedTemp, &rec.Attempts, &success, &rec.Error,
		&rec.WorkItems, &rec.ScheduledEntries, &rec.ActualRuns,
	)
	if err != nil {
		return nil, err
	}
	t, err := parseTime(startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at %q: %w", startedAt, err)
	}
	rec.StartedAt = t
	rec.UsedTempCopy = intToBool(usedTemp)
	rec.Success = intToBool(success)
	return &rec, nil
}

// loadLines attaches per-line counts to recs, ordered by product line.
// Rows are drained before the caller issues another query on the same DBTX.
func (r *SQLiteIngestRepo) loadLines(ctx context.Context, recs []*domain.IngestRecord) error {
	if len(recs) == 0 {
		return nil
	}
	byID := make(map[string]*domain.IngestRecord, len(recs))
	args := make([]any, 0, len(recs))
	for _, rec := range recs {
		rec.Lines = []domain.IngestLineCount{}
		byID[rec.ID] = rec
		args = append(args, rec.ID)
	}

	query := `SELECT ingest_id, product_line, runs_from_id, rows_expanded
		FROM ingest_line_counts WHERE ingest_id IN (?` + strings.Repeat(", ?", len(recs)-1) + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing line counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, line string
		var lc domain.IngestLineCount
		if err := rows.Scan(&id, &line, &lc.RunsFromID, &lc.RowsExpanded); err != nil {
			return fmt.Errorf("scanning line count: %w", err)
		}
		lc.ProductLine = domain.ProductLine(line)
		if rec, ok := byID[id]; ok {
			rec.Lines = append(rec.Lines, lc)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating line counts: %w", err)
	}

	for _, rec := range recs {
		sort.Slice(rec.Lines, func(i, j int) bool {
			return rec.Lines[i].ProductLine < rec.Lines[j].ProductLine
		})
	}
	return nil
}
