package domain

// ScheduledEntry is one planned placement of a work item in a department week.
type ScheduledEntry struct {
	Week        string      `json:"week"`
	Department  Department  `json:"department"`
	WorkItem    string      `json:"work_item"`
	ProductLine ProductLine `json:"product_line"`
}

// ActualRun is a maximal span of consecutive weeks during which a work item
// was observed in a department. Weeks is always >= 1.
type ActualRun struct {
	StartWeek   string      `json:"start_week"`
	Department  Department  `json:"department"`
	WorkItem    string      `json:"work_item"`
	Weeks       int         `json:"weeks"`
	ProductLine ProductLine `json:"product_line"`
}

// WeeklyRow is one expanded week of an ActualRun.
type WeeklyRow struct {
	Week        string      `json:"week"`
	Department  Department  `json:"department"`
	WorkItem    string      `json:"work_item"`
	ProductLine ProductLine `json:"product_line"`
}

// Snapshot is the result of a single parse. It is built fresh on every parse
// and never mutated afterwards.
type Snapshot struct {
	Registry  []string         `json:"registry"`
	Scheduled []ScheduledEntry `json:"scheduled"`
	Actual    []ActualRun      `json:"actual"`
}

// EmptySnapshot returns a valid snapshot with no content. Slices are non-nil
// so JSON consumers see [] rather than null.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Registry:  []string{},
		Scheduled: []ScheduledEntry{},
		Actual:    []ActualRun{},
	}
}
