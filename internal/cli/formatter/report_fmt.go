package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/prodsched/internal/domain"
)

// FormatReport renders a diagnostic report. parseErr, when set, is shown in
// the acquisition section.
func FormatReport(rep domain.Report, parseErr error) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s %s\n%s %s\n%s %s",
		Dim("work items       "), Bold(strconv.Itoa(rep.WorkItems)),
		Dim("scheduled entries"), Bold(strconv.Itoa(rep.ScheduledEntries)),
		Dim("actual runs      "), Bold(strconv.Itoa(rep.ActualRuns)),
	)
	b.WriteString(RenderBox("Schedule report", summary))
	b.WriteString("\n\n")

	b.WriteString(Header("Acquisition"))
	b.WriteString("\n")
	b.WriteString(formatAcquisition(rep.Acquisition, parseErr))
	b.WriteString("\n")

	b.WriteString(Header("By product line"))
	b.WriteString("\n")
	b.WriteString(formatLineCounts(rep))
	b.WriteString(Dim("runs (id) infers the line from the work-item id; rows (expanded) uses the block tag."))
	b.WriteString("\n\n")

	b.WriteString(Header("Flow anomalies"))
	b.WriteString("\n")
	if len(rep.FlowAnomalies) == 0 {
		b.WriteString(StyleGreen.Render("None.") + "\n")
	}
	for _, a := range rep.FlowAnomalies {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("▲"), Bold(a.WorkItem))
		for _, v := range a.Violations {
			fmt.Fprintf(&b, "    %s\n", v)
		}
	}
	return b.String()
}

func formatAcquisition(acq domain.AcquireInfo, parseErr error) string {
	var b strings.Builder
	path := acq.ResolvedPath
	if path == "" {
		path = "--"
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("path     "), path)
	fmt.Fprintf(&b, "%s %d\n", Dim("attempts "), acq.Attempts)
	tmp := "no"
	if acq.UsedTempCopy {
		tmp = StyleYellow.Render("yes")
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("temp copy"), tmp)

	msg := acq.Error
	if msg == "" && parseErr != nil {
		msg = parseErr.Error()
	}
	fmt.Fprintf(&b, "%s %s", Dim("outcome  "), OutcomeIndicator(msg == ""))
	if msg != "" {
		fmt.Fprintf(&b, " %s", StyleRed.Render(msg))
	}
	b.WriteString("\n")
	return b.String()
}

func formatLineCounts(rep domain.Report) string {
	lines := make(map[domain.ProductLine]bool)
	for l := range rep.RunsByLineFromID {
		lines[l] = true
	}
	for l := range rep.RowsByLineExpanded {
		lines[l] = true
	}
	if len(lines) == 0 {
		return Dim("No runs.") + "\n"
	}

	keys := make([]domain.ProductLine, 0, len(lines))
	for l := range lines {
		keys = append(keys, l)
	}
	// unknown sorts last.
	sort.Slice(keys, func(i, j int) bool {
		if (keys[i] == domain.LineUnknown) != (keys[j] == domain.LineUnknown) {
			return keys[j] == domain.LineUnknown
		}
		return keys[i] < keys[j]
	})

	rows := make([][]string, 0, len(keys))
	for _, l := range keys {
		rows = append(rows, []string{
			string(l),
			strconv.Itoa(rep.RunsByLineFromID[l]),
			strconv.Itoa(rep.RowsByLineExpanded[l]),
		})
	}
	return RenderTable([]string{"LINE", "RUNS (ID)", "ROWS (EXPANDED)"}, rows, 1, 2)
}
