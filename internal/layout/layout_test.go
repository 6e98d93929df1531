package layout

import (
	"testing"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_DefaultConvertsToZeroBased(t *testing.T) {
	m, err := Compile(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Production Schedule", m.Sheet())
	assert.Equal(t, 2, m.FirstWeekColumn(), "column C is index 2")
	assert.Equal(t, []domain.ProductLine{"40", "26"}, m.Lines())

	blocks := m.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, 2, blocks[0].HeaderRow)
	require.Len(t, blocks[0].Lanes, 6)
	assert.Equal(t, Lane{Source: "lamination", Department: domain.DeptLamination, ScheduledRow: 3, ActualRow: 4}, blocks[0].Lanes[0])
}

func TestCompile_DetailFoldsIntoQC(t *testing.T) {
	m := MustCompile(DefaultConfig())
	last := m.Blocks()[0].Lanes[5]
	assert.Equal(t, SourceDetail, last.Source)
	assert.Equal(t, domain.DeptQC, last.Department)
}

func TestCompile_BlocksAreCopies(t *testing.T) {
	m := MustCompile(DefaultConfig())
	b := m.Blocks()
	b[0].Lanes[0].ScheduledRow = 99
	b[0].HeaderRow = 99

	fresh := m.Blocks()
	assert.Equal(t, 3, fresh[0].Lanes[0].ScheduledRow)
	assert.Equal(t, 2, fresh[0].HeaderRow)
}

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no blocks", func(c *Config) { c.Blocks = nil }, ErrNoBlocks},
		{"duplicate tag", func(c *Config) { c.Blocks[1].Tag = "40" }, ErrDuplicateTag},
		{"unknown lane", func(c *Config) {
			c.Blocks[0].Lanes["paint"] = LaneRows{Scheduled: 1, Actual: 2}
		}, ErrUnknownLane},
		{"zero row", func(c *Config) {
			c.Blocks[0].Lanes["qc"] = LaneRows{Scheduled: 0, Actual: 2}
		}, ErrBadRow},
		{"zero header row", func(c *Config) { c.Blocks[0].HeaderRow = 0 }, ErrBadRow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := Compile(cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCompile_BadFirstColumn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FirstWeekColumn = "3"
	_, err := Compile(cfg)
	assert.Error(t, err)
}
