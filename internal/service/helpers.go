package service

import "github.com/alexanderramin/prodsched/internal/domain"

// WeeklyFilter narrows expanded rows. Zero fields match everything.
type WeeklyFilter struct {
	Line       domain.ProductLine
	Department domain.Department
}

// FilterWeekly returns the rows matching f, preserving order.
func FilterWeekly(rows []domain.WeeklyRow, f WeeklyFilter) []domain.WeeklyRow {
	out := make([]domain.WeeklyRow, 0, len(rows))
	for _, r := range rows {
		if f.Line != "" && r.ProductLine != f.Line {
			continue
		}
		if f.Department != "" && r.Department != f.Department {
			continue
		}
		out = append(out, r)
	}
	return out
}
