package domain

import "time"

// IngestRecord is an audit entry for one parse that was asked to be recorded.
type IngestRecord struct {
	ID               string            `json:"id"`
	StartedAt        time.Time         `json:"started_at"`
	ResolvedPath     string            `json:"resolved_path"`
	UsedTempCopy     bool              `json:"used_temp_copy"`
	Attempts         int               `json:"attempts"`
	Success          bool              `json:"success"`
	Error            string            `json:"error,omitempty"`
	WorkItems        int               `json:"work_items"`
	ScheduledEntries int               `json:"scheduled_entries"`
	ActualRuns       int               `json:"actual_runs"`
	Lines            []IngestLineCount `json:"lines"`
}

// IngestLineCount holds the two per-line figures of a recorded report.
type IngestLineCount struct {
	ProductLine  ProductLine `json:"product_line"`
	RunsFromID   int         `json:"runs_from_id"`
	RowsExpanded int         `json:"rows_expanded"`
}
