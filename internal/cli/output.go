package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// outputFormat is the --format flag value.
type outputFormat string

const (
	formatAuto  outputFormat = "auto"
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	switch outputFormat(v) {
	case formatAuto, formatTable, formatJSON:
		*f = outputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of auto, table, json")
	}
}

func (f *outputFormat) Type() string { return "format" }

// resolve turns auto into table on a terminal and json otherwise.
func (f outputFormat) resolve(terminal bool) outputFormat {
	if f != formatAuto {
		return f
	}
	if terminal {
		return formatTable
	}
	return formatJSON
}

func addFormatFlag(flags *pflag.FlagSet, f *outputFormat) {
	*f = formatAuto
	flags.Var(f, "format", "Output format (auto|table|json); auto picks table on a terminal")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
