package workbook

import (
	"testing"

	"github.com/alexanderramin/prodsched/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridValue_DirectCell(t *testing.T) {
	g := &Grid{Rows: [][]string{{"a", "  b  "}}}

	v, ok := g.Value(0, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestGridValue_MergeAnchor(t *testing.T) {
	g := &Grid{
		Rows:   [][]string{{"", "HULL-1", "", ""}, {"", "", "", ""}},
		Merges: []MergeRegion{{Top: 0, Left: 1, Bottom: 1, Right: 3}},
	}

	v, ok := g.Value(1, 3)
	assert.True(t, ok)
	assert.Equal(t, "HULL-1", v)
}

func TestGridValue_EmptyAnchor(t *testing.T) {
	g := &Grid{
		Rows:   [][]string{{"", "", "x"}},
		Merges: []MergeRegion{{Top: 0, Left: 0, Bottom: 0, Right: 1}},
	}

	_, ok := g.Value(0, 1)
	assert.False(t, ok, "empty anchor yields no value")
}

func TestGridValue_DoesNotSearchNeighbours(t *testing.T) {
	g := &Grid{Rows: [][]string{{"left", "", "right"}, {"", "", ""}}}

	_, ok := g.Value(0, 1)
	assert.False(t, ok)
	_, ok = g.Value(1, 0)
	assert.False(t, ok)
}

func TestGridValue_OutOfBounds(t *testing.T) {
	g := &Grid{Rows: [][]string{{"a"}}}

	_, ok := g.Value(5, 5)
	assert.False(t, ok)
	_, ok = g.Value(-1, 0)
	assert.False(t, ok)
}

func TestLoadGrid_ReadsValuesAndMerges(t *testing.T) {
	f := testutil.NewWorkbookBuilder(t, "Plan").
		Set("B2", "HULL-7").
		Merge("B2", "D3").
		Set("A1", "title").
		File()

	g, err := LoadGrid(f, "Plan")
	require.NoError(t, err)

	require.Len(t, g.Merges, 1)
	assert.Equal(t, MergeRegion{Top: 1, Left: 1, Bottom: 2, Right: 3}, g.Merges[0])

	v, ok := g.Value(2, 3)
	assert.True(t, ok)
	assert.Equal(t, "HULL-7", v)

	v, ok = g.Value(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "title", v)
}

func TestLoadGrid_MissingSheet(t *testing.T) {
	f := testutil.NewWorkbookBuilder(t, "Plan").File()

	_, err := LoadGrid(f, "Nope")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestDate1904_DefaultFalse(t *testing.T) {
	f := testutil.NewWorkbookBuilder(t, "Plan").File()
	assert.False(t, Date1904(f))
}
