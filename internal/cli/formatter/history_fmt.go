package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// FormatHistory renders recorded ingests, newest first as given.
func FormatHistory(recs []*domain.IngestRecord, now time.Time) string {
	if len(recs) == 0 {
		return Dim("No recorded ingests. Run `prodsched report --record` to add one.") + "\n"
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		path := r.ResolvedPath
		if r.UsedTempCopy {
			path += " " + StyleYellow.Render("(temp copy)")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			RelativeTimeFrom(r.StartedAt, now),
			OutcomeIndicator(r.Success),
			strconv.Itoa(r.WorkItems),
			strconv.Itoa(r.ActualRuns),
			lineSummary(r.Lines),
			path,
		})
	}
	return RenderTable([]string{"ID", "WHEN", "OUTCOME", "ITEMS", "RUNS", "LINES", "PATH"}, rows, 3, 4)
}

func lineSummary(lines []domain.IngestLineCount) string {
	if len(lines) == 0 {
		return Dim("--")
	}
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, string(l.ProductLine)+":"+strconv.Itoa(l.RowsExpanded))
	}
	return strings.Join(parts, " ")
}
