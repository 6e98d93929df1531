// Package layout describes where each product-line block lives on the
// schedule sheet. Row numbers are authored 1-based, the way they read in the
// spreadsheet, and compiled into a read-only Map with 0-based indices.
package layout

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SourceDetail is the sheet's "detail" lane. It only exists in the source
// layout and is folded into qc during extraction.
const SourceDetail = "detail"

var (
	ErrNoBlocks     = errors.New("layout has no product-line blocks")
	ErrDuplicateTag = errors.New("duplicate product-line tag")
	ErrUnknownLane  = errors.New("unknown lane name")
	ErrBadRow       = errors.New("row numbers are 1-based and must be positive")
)

// LaneRows is the pair of 1-based rows for one department lane.
type LaneRows struct {
	Scheduled int `toml:"scheduled" json:"scheduled"`
	Actual    int `toml:"actual" json:"actual"`
}

// BlockConfig is one product-line block as authored in config.
type BlockConfig struct {
	Tag       string              `toml:"tag" json:"tag"`
	HeaderRow int                 `toml:"header_row" json:"header_row"`
	Lanes     map[string]LaneRows `toml:"lanes" json:"lanes"`
}

// Config is the authored form of the layout.
type Config struct {
	Sheet           string        `toml:"sheet" json:"sheet"`
	FirstWeekColumn string        `toml:"first_week_column" json:"first_week_column"`
	Blocks          []BlockConfig `toml:"blocks" json:"blocks"`
}

// Lane is a compiled lane with 0-based row indices.
type Lane struct {
	Source       string
	Department   domain.Department
	ScheduledRow int
	ActualRow    int
}

// Block is a compiled product-line block.
type Block struct {
	Line      domain.ProductLine
	HeaderRow int
	Lanes     []Lane
}

// Map is the compiled layout. It is built once and only read afterwards;
// accessors return copies.
type Map struct {
	sheet    string
	firstCol int
	blocks   []Block
}

// DefaultConfig returns the layout of the production planning sheet.
func DefaultConfig() Config {
	return Config{
		Sheet:           "Production Schedule",
		FirstWeekColumn: "C",
		Blocks: []BlockConfig{
			{
				Tag:       "40",
				HeaderRow: 3,
				Lanes: map[string]LaneRows{
					"lamination": {Scheduled: 4, Actual: 5},
					"assembly":   {Scheduled: 6, Actual: 7},
					"finishing":  {Scheduled: 8, Actual: 9},
					"rigging":    {Scheduled: 10, Actual: 11},
					"qc":         {Scheduled: 12, Actual: 13},
					SourceDetail: {Scheduled: 14, Actual: 15},
				},
			},
			{
				Tag:       "26",
				HeaderRow: 18,
				Lanes: map[string]LaneRows{
					"lamination": {Scheduled: 19, Actual: 20},
					"assembly":   {Scheduled: 21, Actual: 22},
					"finishing":  {Scheduled: 23, Actual: 24},
					"rigging":    {Scheduled: 25, Actual: 26},
					"qc":         {Scheduled: 27, Actual: 28},
					SourceDetail: {Scheduled: 29, Actual: 30},
				},
			},
		},
	}
}

// Compile validates cfg and converts it to a Map.
func Compile(cfg Config) (*Map, error) {
	if len(cfg.Blocks) == 0 {
		return nil, ErrNoBlocks
	}
	if cfg.Sheet == "" {
		return nil, fmt.Errorf("layout.sheet is required")
	}
	firstCol, err := excelize.ColumnNameToNumber(cfg.FirstWeekColumn)
	if err != nil {
		return nil, fmt.Errorf("layout.first_week_column %q: %w", cfg.FirstWeekColumn, err)
	}

	m := &Map{sheet: cfg.Sheet, firstCol: firstCol - 1}
	seen := make(map[string]bool)
	for i, bc := range cfg.Blocks {
		if bc.Tag == "" {
			return nil, fmt.Errorf("layout.blocks[%d].tag is required", i)
		}
		if seen[bc.Tag] {
			return nil, fmt.Errorf("layout.blocks[%d]: %w %q", i, ErrDuplicateTag, bc.Tag)
		}
		seen[bc.Tag] = true
		if bc.HeaderRow < 1 {
			return nil, fmt.Errorf("layout.blocks[%d].header_row: %w", i, ErrBadRow)
		}

		block := Block{Line: domain.ProductLine(bc.Tag), HeaderRow: bc.HeaderRow - 1}
		for name := range bc.Lanes {
			if name != SourceDetail && !domain.ValidDepartments[domain.Department(name)] {
				return nil, fmt.Errorf("layout.blocks[%d].lanes: %w %q", i, ErrUnknownLane, name)
			}
		}
		for _, name := range laneOrder() {
			rows, ok := bc.Lanes[name]
			if !ok {
				continue
			}
			if rows.Scheduled < 1 || rows.Actual < 1 {
				return nil, fmt.Errorf("layout.blocks[%d].lanes.%s: %w", i, name, ErrBadRow)
			}
			block.Lanes = append(block.Lanes, Lane{
				Source:       name,
				Department:   departmentFor(name),
				ScheduledRow: rows.Scheduled - 1,
				ActualRow:    rows.Actual - 1,
			})
		}
		m.blocks = append(m.blocks, block)
	}
	return m, nil
}

// MustCompile is Compile for layouts known to be valid, such as DefaultConfig.
func MustCompile(cfg Config) *Map {
	m, err := Compile(cfg)
	if err != nil {
		panic(err)
	}
	return m
}

// Sheet returns the name of the schedule sheet.
func (m *Map) Sheet() string { return m.sheet }

// FirstWeekColumn returns the 0-based column where week headers start.
func (m *Map) FirstWeekColumn() int { return m.firstCol }

// Blocks returns a copy of the compiled blocks in authored order.
func (m *Map) Blocks() []Block {
	out := make([]Block, len(m.blocks))
	for i, b := range m.blocks {
		b.Lanes = append([]Lane(nil), b.Lanes...)
		out[i] = b
	}
	return out
}

// Lines returns the product-line tags in authored order.
func (m *Map) Lines() []domain.ProductLine {
	out := make([]domain.ProductLine, len(m.blocks))
	for i, b := range m.blocks {
		out[i] = b.Line
	}
	return out
}

func laneOrder() []string {
	names := make([]string, 0, len(domain.FlowOrder)+1)
	for _, d := range domain.FlowOrder {
		names = append(names, string(d))
	}
	return append(names, SourceDetail)
}

func departmentFor(source string) domain.Department {
	if source == SourceDetail {
		return domain.DeptQC
	}
	return domain.Department(source)
}
