// Package timeline compresses weekly actual observations into runs of
// consecutive weeks and expands runs back into weekly rows.
package timeline

import (
	"sort"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
)

const weekDays = 7

// Observation records that a work item was seen in a department during a
// canonical week.
type Observation struct {
	WorkItem    string
	Department  domain.Department
	Week        string
	ProductLine domain.ProductLine
}

type groupKey struct {
	workItem   string
	department domain.Department
	line       domain.ProductLine
}

// Stitch groups observations by (work item, department, product line) and
// emits one run per maximal chain of weeks exactly seven days apart. Repeated
// observations of the same week count once. Weeks that do not parse are
// dropped.
func Stitch(obs []Observation) []domain.ActualRun {
	groups := make(map[groupKey]map[string]bool)
	for _, o := range obs {
		k := groupKey{workItem: o.WorkItem, department: o.Department, line: o.ProductLine}
		if groups[k] == nil {
			groups[k] = make(map[string]bool)
		}
		groups[k][o.Week] = true
	}

	var runs []domain.ActualRun
	for k, set := range groups {
		weeks := make([]string, 0, len(set))
		for w := range set {
			if _, err := time.Parse(domain.WeekLayout, w); err == nil {
				weeks = append(weeks, w)
			}
		}
		// ISO dates sort chronologically as strings.
		sort.Strings(weeks)

		for i := 0; i < len(weeks); {
			start := weeks[i]
			n := 1
			for i+n < len(weeks) && daysBetween(weeks[i+n-1], weeks[i+n]) == weekDays {
				n++
			}
			runs = append(runs, domain.ActualRun{
				StartWeek:   start,
				Department:  k.department,
				WorkItem:    k.workItem,
				Weeks:       n,
				ProductLine: k.line,
			})
			i += n
		}
	}

	SortRuns(runs)
	return runs
}

// Expand returns one row per week covered by each run, in run order.
func Expand(runs []domain.ActualRun) []domain.WeeklyRow {
	var rows []domain.WeeklyRow
	for _, r := range runs {
		start, err := time.Parse(domain.WeekLayout, r.StartWeek)
		if err != nil {
			continue
		}
		for i := 0; i < r.Weeks; i++ {
			rows = append(rows, domain.WeeklyRow{
				Week:        start.AddDate(0, 0, i*weekDays).Format(domain.WeekLayout),
				Department:  r.Department,
				WorkItem:    r.WorkItem,
				ProductLine: r.ProductLine,
			})
		}
	}
	return rows
}

// SortRuns orders runs by start week, canonical department order, work item,
// then product line.
func SortRuns(runs []domain.ActualRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.StartWeek != b.StartWeek {
			return a.StartWeek < b.StartWeek
		}
		if ra, rb := a.Department.Rank(), b.Department.Rank(); ra != rb {
			return ra < rb
		}
		if a.WorkItem != b.WorkItem {
			return a.WorkItem < b.WorkItem
		}
		return a.ProductLine < b.ProductLine
	})
}

func daysBetween(a, b string) int {
	ta, _ := time.Parse(domain.WeekLayout, a)
	tb, _ := time.Parse(domain.WeekLayout, b)
	return int(tb.Sub(ta).Hours() / 24)
}
