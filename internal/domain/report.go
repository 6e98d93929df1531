package domain

// AcquireInfo records how the workbook was read. It is diagnostic only.
type AcquireInfo struct {
	ResolvedPath string `json:"resolved_path"`
	UsedTempCopy bool   `json:"used_temp_copy"`
	Attempts     int    `json:"attempts"`
	Error        string `json:"error,omitempty"`
}

// FlowAnomaly lists the department orderings a work item violates, each
// formatted as "<later dept> before <earlier dept>".
type FlowAnomaly struct {
	WorkItem   string   `json:"work_item"`
	Violations []string `json:"violations"`
}

// Report summarizes a parse. It is recomputed on every parse.
//
// RunsByLineFromID infers the product line from the work-item id text and is
// a heuristic. RowsByLineExpanded counts expanded weekly rows by the tag
// recorded on each run. The two figures are expected to differ.
type Report struct {
	WorkItems          int                 `json:"work_items"`
	ScheduledEntries   int                 `json:"scheduled_entries"`
	ActualRuns         int                 `json:"actual_runs"`
	RunsByLineFromID   map[ProductLine]int `json:"runs_by_line_from_id"`
	RowsByLineExpanded map[ProductLine]int `json:"rows_by_line_expanded"`
	FlowAnomalies      []FlowAnomaly       `json:"flow_anomalies"`
	Acquisition        AcquireInfo         `json:"acquisition"`
}

// ReportedSnapshot pairs a snapshot with its diagnostic report.
type ReportedSnapshot struct {
	Snapshot
	Report Report `json:"report"`
}
