package extract

import (
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/layout"
	"github.com/alexanderramin/prodsched/internal/workbook"
)

// Candidate is a raw lane cell paired with its canonical week. Value has not
// been split into work-item ids yet.
type Candidate struct {
	Value       string
	Week        string
	Department  domain.Department
	ProductLine domain.ProductLine
	Lane        string // source lane; detail is kept distinct
}

// Lanes holds the candidates of both lanes, ordered block, lane, then week.
type Lanes struct {
	Scheduled []Candidate
	Actual    []Candidate
}

// Options carries the per-parse inputs that are not part of the layout.
type Options struct {
	YearHint int
	Date1904 bool
}

// ExtractLanes reads every block's scheduled and actual lanes at each of
// that block's week columns. The detail lane is reported under qc.
func ExtractLanes(g *workbook.Grid, m *layout.Map, opts Options) Lanes {
	var out Lanes
	for _, block := range m.Blocks() {
		weeks := WeekColumns(g, block.HeaderRow, m.FirstWeekColumn(), opts.YearHint, opts.Date1904)
		for _, lane := range block.Lanes {
			for _, wc := range weeks {
				if v, ok := g.Value(lane.ScheduledRow, wc.Col); ok {
					out.Scheduled = append(out.Scheduled, Candidate{
						Value: v, Week: wc.Week, Department: lane.Department,
						ProductLine: block.Line, Lane: lane.Source,
					})
				}
				if v, ok := g.Value(lane.ActualRow, wc.Col); ok {
					out.Actual = append(out.Actual, Candidate{
						Value: v, Week: wc.Week, Department: lane.Department,
						ProductLine: block.Line, Lane: lane.Source,
					})
				}
			}
		}
	}
	return out
}
