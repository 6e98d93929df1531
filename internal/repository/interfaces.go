package repository

import (
	"context"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// IngestRepo stores the audit trail of parse runs.
type IngestRepo interface {
	Create(ctx context.Context, rec *domain.IngestRecord) error
	GetByID(ctx context.Context, id string) (*domain.IngestRecord, error)
	// ListRecent returns up to limit records, newest first. A limit <= 0
	// returns every record.
	ListRecent(ctx context.Context, limit int) ([]*domain.IngestRecord, error)
}
