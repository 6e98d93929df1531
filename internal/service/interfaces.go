package service

import (
	"context"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// ScheduleService runs the spreadsheet pipeline. Every call reads the
// workbook afresh; nothing is cached between calls.
type ScheduleService interface {
	// Parse never fails: acquisition or sheet errors yield an empty snapshot.
	Parse(ctx context.Context) *domain.Snapshot
	// ParseWithReport returns the failure explicitly. The result is non-nil
	// even on error and carries the acquisition diagnostics.
	ParseWithReport(ctx context.Context) (*domain.ReportedSnapshot, error)
	// Weekly expands the actual runs of a fresh Parse into weekly rows.
	Weekly(ctx context.Context) []domain.WeeklyRow
}

// IngestService records and lists the audit trail of reported parses.
type IngestService interface {
	Record(ctx context.Context, startedAt time.Time, res *domain.ReportedSnapshot, parseErr error) (*domain.IngestRecord, error)
	GetByID(ctx context.Context, id string) (*domain.IngestRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.IngestRecord, error)
}
