package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/prodsched/internal/diagnose"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/extract"
	"github.com/alexanderramin/prodsched/internal/layout"
	"github.com/alexanderramin/prodsched/internal/timeline"
	"github.com/alexanderramin/prodsched/internal/workbook"
	"github.com/xuri/excelize/v2"
)

// Source locates the workbook for a ScheduleService.
type Source struct {
	Path         string
	FallbackPath string
	// YearHint anchors header dates; 0 uses the current year at parse time.
	YearHint int
}

type scheduleService struct {
	source   Source
	layout   *layout.Map
	acquirer *workbook.Acquirer
	now      func() time.Time
	observer UseCaseObserver
}

// NewScheduleService creates a ScheduleService. The layout map is shared
// read-only across calls.
func NewScheduleService(
	source Source,
	m *layout.Map,
	acquirer *workbook.Acquirer,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		source:   source,
		layout:   m,
		acquirer: acquirer,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Parse(ctx context.Context) *domain.Snapshot {
	snap, _, _ := s.run(ctx, "parse")
	return snap
}

func (s *scheduleService) ParseWithReport(ctx context.Context) (*domain.ReportedSnapshot, error) {
	snap, acq, err := s.run(ctx, "parse-with-report")
	return &domain.ReportedSnapshot{
		Snapshot: *snap,
		Report:   diagnose.Build(snap, acq, s.layout.Lines()),
	}, err
}

func (s *scheduleService) Weekly(ctx context.Context) []domain.WeeklyRow {
	rows := timeline.Expand(s.Parse(ctx).Actual)
	if rows == nil {
		rows = []domain.WeeklyRow{}
	}
	return rows
}

// run executes one parse. On failure it returns an empty snapshot together
// with the error and whatever acquisition info was gathered.
func (s *scheduleService) run(ctx context.Context, name string) (snap *domain.Snapshot, acq domain.AcquireInfo, err error) {
	startedAt := s.now()
	fields := map[string]any{"sheet": s.layout.Sheet()}
	defer func() {
		fields["resolved_path"] = acq.ResolvedPath
		fields["used_temp_copy"] = acq.UsedTempCopy
		fields["attempts"] = acq.Attempts
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var f *excelize.File
	f, acq, err = s.acquirer.Acquire(ctx, s.source.Path, s.source.FallbackPath)
	if err != nil {
		return domain.EmptySnapshot(), acq, err
	}
	defer f.Close()

	grid, err := workbook.LoadGrid(f, s.layout.Sheet())
	if err != nil {
		return domain.EmptySnapshot(), acq, fmt.Errorf("loading %s: %w", acq.ResolvedPath, err)
	}

	yearHint := s.source.YearHint
	if yearHint <= 0 {
		yearHint = startedAt.Year()
	}
	lanes := extract.ExtractLanes(grid, s.layout, extract.Options{
		YearHint: yearHint,
		Date1904: workbook.Date1904(f),
	})

	snap = assemble(lanes)
	fields["work_items"] = len(snap.Registry)
	fields["scheduled_entries"] = len(snap.Scheduled)
	fields["actual_runs"] = len(snap.Actual)
	return snap, acq, nil
}

// assemble splits lane candidates into work items and builds the snapshot.
func assemble(lanes extract.Lanes) *domain.Snapshot {
	snap := domain.EmptySnapshot()
	seen := make(map[string]bool)

	for _, c := range lanes.Scheduled {
		for _, id := range extract.SplitTokens(c.Value) {
			snap.Scheduled = append(snap.Scheduled, domain.ScheduledEntry{
				Week:        c.Week,
				Department:  c.Department,
				WorkItem:    id,
				ProductLine: c.ProductLine,
			})
			seen[id] = true
		}
	}

	var obs []timeline.Observation
	for _, c := range lanes.Actual {
		for _, id := range extract.SplitTokens(c.Value) {
			obs = append(obs, timeline.Observation{
				WorkItem:    id,
				Department:  c.Department,
				Week:        c.Week,
				ProductLine: c.ProductLine,
			})
			seen[id] = true
		}
	}
	if runs := timeline.Stitch(obs); runs != nil {
		snap.Actual = runs
	}

	for id := range seen {
		snap.Registry = append(snap.Registry, id)
	}
	sort.Strings(snap.Registry)
	return snap
}
