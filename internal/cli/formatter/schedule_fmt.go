package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// FormatSnapshot renders the scheduled entries and actual runs of a parse.
func FormatSnapshot(snap *domain.Snapshot) string {
	var b strings.Builder

	b.WriteString(Header("Scheduled"))
	b.WriteString("\n")
	if len(snap.Scheduled) == 0 {
		b.WriteString(Dim("No scheduled entries.") + "\n")
	} else {
		rows := make([][]string, 0, len(snap.Scheduled))
		for _, e := range snap.Scheduled {
			rows = append(rows, []string{WeekLabel(e.Week), Department(e.Department), Bold(e.WorkItem), string(e.ProductLine)})
		}
		b.WriteString(RenderTable([]string{"WEEK", "DEPARTMENT", "WORK ITEM", "LINE"}, rows))
	}

	b.WriteString("\n")
	b.WriteString(Header("Actual runs"))
	b.WriteString("\n")
	if len(snap.Actual) == 0 {
		b.WriteString(Dim("No actual runs.") + "\n")
	} else {
		rows := make([][]string, 0, len(snap.Actual))
		for _, r := range snap.Actual {
			rows = append(rows, []string{
				WeekLabel(r.StartWeek), Department(r.Department), Bold(r.WorkItem),
				string(r.ProductLine), strconv.Itoa(r.Weeks),
			})
		}
		b.WriteString(RenderTable([]string{"START", "DEPARTMENT", "WORK ITEM", "LINE", "WEEKS"}, rows, 4))
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s, %s, %s",
		Plural(len(snap.Registry), "work item"),
		Plural(len(snap.Scheduled), "scheduled entry"),
		Plural(len(snap.Actual), "run"))))
	b.WriteString("\n")
	return b.String()
}

// FormatWeekly renders expanded weekly rows.
func FormatWeekly(rows []domain.WeeklyRow) string {
	if len(rows) == 0 {
		return Dim("No weekly rows.") + "\n"
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{WeekLabel(r.Week), Department(r.Department), Bold(r.WorkItem), string(r.ProductLine)})
	}
	return RenderTable([]string{"WEEK", "DEPARTMENT", "WORK ITEM", "LINE"}, out)
}
