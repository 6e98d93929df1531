package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/repository"
	"github.com/google/uuid"
)

type ingestService struct {
	ingests repository.IngestRepo
	uow     db.UnitOfWork
}

func NewIngestService(ingests repository.IngestRepo, uow db.UnitOfWork) IngestService {
	return &ingestService{ingests: ingests, uow: uow}
}

// Record stores the counts of a reported parse. The report body itself is
// not kept.
func (s *ingestService) Record(ctx context.Context, startedAt time.Time, res *domain.ReportedSnapshot, parseErr error) (*domain.IngestRecord, error) {
	rec := newIngestRecord(startedAt, res, parseErr)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteIngestRepo(tx).Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *ingestService) GetByID(ctx context.Context, id string) (*domain.IngestRecord, error) {
	return s.ingests.GetByID(ctx, id)
}

func (s *ingestService) ListRecent(ctx context.Context, limit int) ([]*domain.IngestRecord, error) {
	return s.ingests.ListRecent(ctx, limit)
}

func newIngestRecord(startedAt time.Time, res *domain.ReportedSnapshot, parseErr error) *domain.IngestRecord {
	rep := res.Report
	rec := &domain.IngestRecord{
		ID:               uuid.New().String(),
		StartedAt:        startedAt.UTC(),
		ResolvedPath:     rep.Acquisition.ResolvedPath,
		UsedTempCopy:     rep.Acquisition.UsedTempCopy,
		Attempts:         rep.Acquisition.Attempts,
		Success:          parseErr == nil,
		WorkItems:        rep.WorkItems,
		ScheduledEntries: rep.ScheduledEntries,
		ActualRuns:       rep.ActualRuns,
		Lines:            lineCounts(rep),
	}
	if parseErr != nil {
		rec.Error = parseErr.Error()
	}
	return rec
}

// lineCounts merges both per-line maps into one row per line.
func lineCounts(rep domain.Report) []domain.IngestLineCount {
	byLine := make(map[domain.ProductLine]*domain.IngestLineCount)
	get := func(l domain.ProductLine) *domain.IngestLineCount {
		if lc, ok := byLine[l]; ok {
			return lc
		}
		lc := &domain.IngestLineCount{ProductLine: l}
		byLine[l] = lc
		return lc
	}
	for l, n := range rep.RunsByLineFromID {
		get(l).RunsFromID = n
	}
	for l, n := range rep.RowsByLineExpanded {
		get(l).RowsExpanded = n
	}

	out := make([]domain.IngestLineCount, 0, len(byLine))
	for _, lc := range byLine {
		out = append(out, *lc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductLine < out[j].ProductLine })
	return out
}
