// Package extract turns a schedule Grid into lane candidates: it maps week
// header columns to canonical weeks, reads scheduled and actual lanes, and
// splits multi-entry cells into work-item ids.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/workbook"
	"github.com/xuri/excelize/v2"
)

// fridayToMonday is the offset from a work-week's Friday end-date to its Monday.
const fridayToMonday = -4

var (
	reSerial = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	reTriple = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2}|\d{4})$`)
	reRange  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\s*(?:-|–|—|to)\s*(\d{1,2})/(\d{1,2})$`)
	reBare   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
)

// WeekColumn maps a sheet column to the canonical week its header names.
type WeekColumn struct {
	Col  int
	Week string
}

// ParseHeaderWeek converts a raw header value into the Monday of the
// work-week whose Friday the header names. Encodings are tried in order:
// date serial, M/D/Y, M/D-M/D range (right side is the Friday), bare M/D
// using yearHint. ok is false when no encoding matches.
func ParseHeaderWeek(raw string, yearHint int, date1904 bool) (string, bool) {
	friday, ok := parseFriday(strings.TrimSpace(raw), yearHint, date1904)
	if !ok {
		return "", false
	}
	return friday.AddDate(0, 0, fridayToMonday).Format(domain.WeekLayout), true
}

func parseFriday(s string, yearHint int, date1904 bool) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if reSerial.MatchString(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil || serial <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}

	if m := reTriple.FindStringSubmatch(s); m != nil {
		year := atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		return calendarDate(year, atoi(m[1]), atoi(m[2]))
	}

	if m := reRange.FindStringSubmatch(s); m != nil {
		if _, ok := calendarDate(yearHint, atoi(m[1]), atoi(m[2])); !ok {
			return time.Time{}, false
		}
		return calendarDate(yearHint, atoi(m[3]), atoi(m[4]))
	}

	if m := reBare.FindStringSubmatch(s); m != nil {
		return calendarDate(yearHint, atoi(m[1]), atoi(m[2]))
	}

	return time.Time{}, false
}

// calendarDate rejects dates that time.Date would silently normalize.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// WeekColumns scans the header row from firstCol rightwards and stops at the
// first empty header cell. Unparseable headers and weeks more than a year
// away from yearHint are skipped. The result is deduplicated by week, the
// leftmost column winning, and sorted by week.
func WeekColumns(g *workbook.Grid, headerRow, firstCol, yearHint int, date1904 bool) []WeekColumn {
	seen := make(map[string]bool)
	var cols []WeekColumn

	for col := firstCol; ; col++ {
		raw, ok := g.Value(headerRow, col)
		if !ok {
			break
		}
		week, ok := ParseHeaderWeek(raw, yearHint, date1904)
		if !ok || !plausibleYear(week, yearHint) {
			continue
		}
		if seen[week] {
			continue
		}
		seen[week] = true
		cols = append(cols, WeekColumn{Col: col, Week: week})
	}

	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Week < cols[j].Week })
	return cols
}

func plausibleYear(week string, yearHint int) bool {
	t, err := time.Parse(domain.WeekLayout, week)
	if err != nil {
		return false
	}
	diff := t.Year() - yearHint
	return diff >= -1 && diff <= 1
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
