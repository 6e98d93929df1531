package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MergeRegion is a merged rectangle with zero-based inclusive bounds.
type MergeRegion struct {
	Top, Left, Bottom, Right int
}

// Contains reports whether (row, col) lies inside the region.
func (m MergeRegion) Contains(row, col int) bool {
	return row >= m.Top && row <= m.Bottom && col >= m.Left && col <= m.Right
}

// Grid is an in-memory copy of one sheet's raw cell values and merge
// regions. It does not depend on the spreadsheet library once loaded.
type Grid struct {
	Name   string
	Rows   [][]string
	Merges []MergeRegion
}

// Value returns the effective value at a zero-based (row, col): the cell's
// own value when non-empty, otherwise the anchor of the merge region that
// contains it. ok is false when neither holds a value.
func (g *Grid) Value(row, col int) (string, bool) {
	if v := g.raw(row, col); v != "" {
		return v, true
	}
	for _, m := range g.Merges {
		if m.Contains(row, col) {
			v := g.raw(m.Top, m.Left)
			return v, v != ""
		}
	}
	return "", false
}

func (g *Grid) raw(row, col int) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	cells := g.Rows[row]
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// LoadGrid copies a sheet out of f. Values are read raw so date-formatted
// headers arrive as serial numbers rather than locale-formatted text.
func LoadGrid(f *excelize.File, sheet string) (*Grid, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading rows of %q: %w", sheet, err)
	}

	cells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading merged cells of %q: %w", sheet, err)
	}

	merges := make([]MergeRegion, 0, len(cells))
	for _, mc := range cells {
		region, err := parseMergeRegion(mc.GetStartAxis(), mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merged cell %s:%s: %w", mc.GetStartAxis(), mc.GetEndAxis(), err)
		}
		merges = append(merges, region)
	}

	return &Grid{Name: sheet, Rows: rows, Merges: merges}, nil
}

// Date1904 reports whether the workbook uses the 1904 date epoch.
func Date1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

func parseMergeRegion(start, end string) (MergeRegion, error) {
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return MergeRegion{}, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return MergeRegion{}, err
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return MergeRegion{Top: r1 - 1, Left: c1 - 1, Bottom: r2 - 1, Right: c2 - 1}, nil
}
