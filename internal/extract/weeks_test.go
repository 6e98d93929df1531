package extract

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/alexanderramin/prodsched/internal/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderWeek_Encodings(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"serial", "45667", "2025-01-06"},
		{"serial with fraction", "45667.5", "2025-01-06"},
		{"slash triple", "1/10/2025", "2025-01-06"},
		{"dash triple", "1-10-2025", "2025-01-06"},
		{"two digit year", "1/10/25", "2025-01-06"},
		{"range hyphen", "1/6-1/10", "2025-01-06"},
		{"range en dash spaced", "1/6 – 1/10", "2025-01-06"},
		{"range to", "1/6 to 1/10", "2025-01-06"},
		{"range uses right side", "1/1-1/10", "2025-01-06"},
		{"bare", "1/10", "2025-01-06"},
		{"padded", "  01/10 ", "2025-01-06"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseHeaderWeek(tc.raw, 2025, false)
			require.True(t, ok, "raw=%q", tc.raw)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseHeaderWeek_Date1904(t *testing.T) {
	// 1904 serials are 1462 days smaller than 1900 serials for the same date.
	got, ok := ParseHeaderWeek(strconv.Itoa(45667-1462), 2025, true)
	require.True(t, ok)
	assert.Equal(t, "2025-01-06", got)
}

func TestParseHeaderWeek_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "Week 1", "13/10", "2/30", "1/10/2025 notes", "0", "-3", "abc/def",
		"NaN", "Inf", "infinity", "1e5", "0x1p-2"} {
		_, ok := ParseHeaderWeek(raw, 2025, false)
		assert.False(t, ok, "raw=%q", raw)
	}
}

func TestParseHeaderWeek_MondayIsFourDaysBeforeFriday(t *testing.T) {
	start := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	for friday := start; friday.Year() == 2025; friday = friday.AddDate(0, 0, 7) {
		serial := friday.Sub(time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)).Hours() / 24
		encodings := []string{
			strconv.Itoa(int(serial)),
			fmt.Sprintf("%d/%d/%d", friday.Month(), friday.Day(), friday.Year()),
			fmt.Sprintf("%d/%d-%d/%d", friday.AddDate(0, 0, -4).Month(), friday.AddDate(0, 0, -4).Day(), friday.Month(), friday.Day()),
			fmt.Sprintf("%d/%d", friday.Month(), friday.Day()),
		}
		for _, raw := range encodings {
			got, ok := ParseHeaderWeek(raw, 2025, false)
			require.True(t, ok, "raw=%q", raw)

			monday, err := time.Parse("2006-01-02", got)
			require.NoError(t, err)
			assert.Equal(t, time.Monday, monday.Weekday(), "raw=%q", raw)
			assert.Equal(t, friday.AddDate(0, 0, -4), monday, "raw=%q", raw)
		}
	}
}

func TestWeekColumns_ScanDedupeSort(t *testing.T) {
	g := &workbook.Grid{Rows: [][]string{
		{"Dept", "Lane", "1/17", "bad", "1/10", "1/17", "1/3/2019", "", "1/31"},
	}}

	cols := WeekColumns(g, 0, 2, 2025, false)

	assert.Equal(t, []WeekColumn{
		{Col: 4, Week: "2025-01-06"},
		{Col: 2, Week: "2025-01-13"},
	}, cols, "stops at the empty header; 1/31 is never visited")
}

func TestWeekColumns_MergedHeader(t *testing.T) {
	g := &workbook.Grid{
		Rows:   [][]string{{"", "", "1/10", "", "1/24"}},
		Merges: []workbook.MergeRegion{{Top: 0, Left: 2, Bottom: 0, Right: 3}},
	}

	cols := WeekColumns(g, 0, 2, 2025, false)

	assert.Equal(t, []WeekColumn{
		{Col: 2, Week: "2025-01-06"},
		{Col: 4, Week: "2025-01-20"},
	}, cols, "merged continuation resolves to the same week and is deduplicated")
}

func TestWeekColumns_YearWindow(t *testing.T) {
	g := &workbook.Grid{Rows: [][]string{{"1/9/2026", "1/10/2025", "1/12/2024", "1/13/2023"}}}

	cols := WeekColumns(g, 0, 0, 2025, false)

	require.Len(t, cols, 3)
	assert.Equal(t, "2024-01-08", cols[0].Week)
	assert.Equal(t, "2025-01-06", cols[1].Week)
	assert.Equal(t, "2026-01-05", cols[2].Week)
}

func TestWeekColumns_FiveDigitYearIsImplausible(t *testing.T) {
	// 6702211 is the serial of Friday 20250-01-10.
	g := &workbook.Grid{Rows: [][]string{{"6702211", "1/17"}}}

	cols := WeekColumns(g, 0, 0, 2025, false)

	assert.Equal(t, []WeekColumn{{Col: 1, Week: "2025-01-13"}}, cols)
	assert.False(t, plausibleYear("20250-01-06", 2025))
	assert.True(t, plausibleYear("2026-01-05", 2025))
}
