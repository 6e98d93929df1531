package timeline

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(item string, dept domain.Department, line domain.ProductLine, weeks ...string) []Observation {
	out := make([]Observation, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, Observation{WorkItem: item, Department: dept, Week: w, ProductLine: line})
	}
	return out
}

func TestStitch_GapSplitsRuns(t *testing.T) {
	runs := Stitch(obs("40-1", domain.DeptAssembly, "40", "2025-01-06", "2025-01-13", "2025-01-27"))

	assert.Equal(t, []domain.ActualRun{
		{StartWeek: "2025-01-06", Department: domain.DeptAssembly, WorkItem: "40-1", Weeks: 2, ProductLine: "40"},
		{StartWeek: "2025-01-27", Department: domain.DeptAssembly, WorkItem: "40-1", Weeks: 1, ProductLine: "40"},
	}, runs)
}

func TestStitch_DuplicateWeeksCountOnce(t *testing.T) {
	runs := Stitch(obs("A", domain.DeptQC, "26", "2025-01-13", "2025-01-06", "2025-01-13"))

	require.Len(t, runs, 1)
	assert.Equal(t, "2025-01-06", runs[0].StartWeek)
	assert.Equal(t, 2, runs[0].Weeks)
}

func TestStitch_KeysAreSeparate(t *testing.T) {
	var in []Observation
	in = append(in, obs("A", domain.DeptLamination, "40", "2025-01-06")...)
	in = append(in, obs("A", domain.DeptLamination, "26", "2025-01-13")...)
	in = append(in, obs("A", domain.DeptAssembly, "40", "2025-01-13")...)

	runs := Stitch(in)

	require.Len(t, runs, 3, "same item in another line or department never merges")
	for _, r := range runs {
		assert.Equal(t, 1, r.Weeks)
	}
}

func TestStitch_CrossesYearBoundary(t *testing.T) {
	runs := Stitch(obs("A", domain.DeptRigging, "40", "2024-12-23", "2024-12-30", "2025-01-06"))

	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].Weeks)
}

func TestStitch_Empty(t *testing.T) {
	assert.Empty(t, Stitch(nil))
}

func TestStitch_Ordering(t *testing.T) {
	var in []Observation
	in = append(in, obs("B", domain.DeptQC, "40", "2025-01-06")...)
	in = append(in, obs("A", domain.DeptQC, "40", "2025-01-06")...)
	in = append(in, obs("Z", domain.DeptLamination, "40", "2025-01-06")...)
	in = append(in, obs("A", domain.DeptLamination, "40", "2024-12-30")...)

	runs := Stitch(in)

	require.Len(t, runs, 4)
	assert.Equal(t, "2024-12-30", runs[0].StartWeek)
	assert.Equal(t, "Z", runs[1].WorkItem, "lamination before qc within a week")
	assert.Equal(t, "A", runs[2].WorkItem)
	assert.Equal(t, "B", runs[3].WorkItem)
}

func TestExpand_RoundTripsObservedWeeks(t *testing.T) {
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		var weeks []string
		for i := 0; i < 30; i++ {
			if rng.Intn(2) == 0 {
				weeks = append(weeks, base.AddDate(0, 0, 7*i).Format(domain.WeekLayout))
			}
		}
		// Shuffle and repeat some weeks to exercise dedupe.
		in := append([]string{}, weeks...)
		if len(weeks) > 0 {
			in = append(in, weeks[rng.Intn(len(weeks))])
		}
		rng.Shuffle(len(in), func(i, j int) { in[i], in[j] = in[j], in[i] })

		runs := Stitch(obs("A", domain.DeptFinishing, "40", in...))
		rows := Expand(runs)

		got := make([]string, 0, len(rows))
		for _, r := range rows {
			got = append(got, r.Week)
		}
		sort.Strings(got)
		if len(weeks) == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, weeks, got, "trial %d", trial)

		for i := 1; i < len(runs); i++ {
			prevEnd, _ := time.Parse(domain.WeekLayout, runs[i-1].StartWeek)
			prevEnd = prevEnd.AddDate(0, 0, 7*(runs[i-1].Weeks-1))
			next, _ := time.Parse(domain.WeekLayout, runs[i].StartWeek)
			assert.Greater(t, next.Sub(prevEnd), 7*24*time.Hour, "adjacent runs must be separated by a gap")
		}
	}
}

func TestExpand_OneRowPerWeek(t *testing.T) {
	rows := Expand([]domain.ActualRun{
		{StartWeek: "2025-01-06", Department: domain.DeptAssembly, WorkItem: "A", Weeks: 3, ProductLine: "26"},
	})

	assert.Equal(t, []domain.WeeklyRow{
		{Week: "2025-01-06", Department: domain.DeptAssembly, WorkItem: "A", ProductLine: "26"},
		{Week: "2025-01-13", Department: domain.DeptAssembly, WorkItem: "A", ProductLine: "26"},
		{Week: "2025-01-20", Department: domain.DeptAssembly, WorkItem: "A", ProductLine: "26"},
	}, rows)
}
