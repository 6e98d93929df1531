// Package diagnose builds the diagnostic report used to sanity-check an
// extraction. It only reads the snapshot it is given.
package diagnose

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/timeline"
)

// Build computes the report for snap. lines is the layout's product-line
// tags in authored order; it drives the id-text inference.
func Build(snap *domain.Snapshot, acq domain.AcquireInfo, lines []domain.ProductLine) domain.Report {
	return domain.Report{
		WorkItems:          len(snap.Registry),
		ScheduledEntries:   len(snap.Scheduled),
		ActualRuns:         len(snap.Actual),
		RunsByLineFromID:   RunsByLineFromID(snap.Actual, lines),
		RowsByLineExpanded: RowsByLineExpanded(snap.Actual),
		FlowAnomalies:      FlowAnomalies(snap.Actual),
		Acquisition:        acq,
	}
}

// inferLine guesses a product line from the work-item id alone: the first
// tag that appears in the id as a standalone run of digits. It returns
// domain.LineUnknown when no tag matches.
func inferLine(workItem string, matchers []lineMatcher) domain.ProductLine {
	for _, m := range matchers {
		if m.re.MatchString(workItem) {
			return m.line
		}
	}
	return domain.LineUnknown
}

type lineMatcher struct {
	line domain.ProductLine
	re   *regexp.Regexp
}

func newLineMatchers(lines []domain.ProductLine) []lineMatcher {
	out := make([]lineMatcher, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineMatcher{
			line: l,
			re:   regexp.MustCompile(`(?:^|\D)` + regexp.QuoteMeta(string(l)) + `(?:\D|$)`),
		})
	}
	return out
}

// RunsByLineFromID counts runs per product line inferred from id text.
func RunsByLineFromID(runs []domain.ActualRun, lines []domain.ProductLine) map[domain.ProductLine]int {
	matchers := newLineMatchers(lines)
	counts := make(map[domain.ProductLine]int)
	for _, r := range runs {
		counts[inferLine(r.WorkItem, matchers)]++
	}
	return counts
}

// RowsByLineExpanded counts expanded weekly rows per the tag recorded on
// each run.
func RowsByLineExpanded(runs []domain.ActualRun) map[domain.ProductLine]int {
	counts := make(map[domain.ProductLine]int)
	for _, row := range timeline.Expand(runs) {
		counts[row.ProductLine]++
	}
	return counts
}

// FlowAnomalies flags work items whose earliest actual week in a department
// comes before the earliest week of a department that precedes it in flow
// order. Violations are reported, not corrected.
func FlowAnomalies(runs []domain.ActualRun) []domain.FlowAnomaly {
	earliest := make(map[string]map[domain.Department]string)
	for _, r := range runs {
		byDept := earliest[r.WorkItem]
		if byDept == nil {
			byDept = make(map[domain.Department]string)
			earliest[r.WorkItem] = byDept
		}
		if cur, ok := byDept[r.Department]; !ok || r.StartWeek < cur {
			byDept[r.Department] = r.StartWeek
		}
	}

	items := make([]string, 0, len(earliest))
	for item := range earliest {
		items = append(items, item)
	}
	sort.Strings(items)

	anomalies := []domain.FlowAnomaly{}
	for _, item := range items {
		byDept := earliest[item]
		var violations []string
		for i, before := range domain.FlowOrder {
			wb, ok := byDept[before]
			if !ok {
				continue
			}
			for _, after := range domain.FlowOrder[i+1:] {
				wa, ok := byDept[after]
				if ok && wa < wb {
					violations = append(violations, fmt.Sprintf("%s before %s", after, before))
				}
			}
		}
		if len(violations) > 0 {
			anomalies = append(anomalies, domain.FlowAnomaly{WorkItem: item, Violations: violations})
		}
	}
	return anomalies
}
