package cli

import (
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	var format outputFormat

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse the schedule workbook into entries and runs",
		Long: `Parse reads the workbook and prints the work-item registry, scheduled
entries, and stitched actual runs. It never fails: an unreadable workbook
prints an empty result. Use "report" to see why a parse came back empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Schedule.Parse(cmd.Context())
			if format.resolve(app.isTerminal()) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSnapshot(snap))
			return nil
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	return cmd
}
