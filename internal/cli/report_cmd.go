package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var format outputFormat
	var record bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Parse and print the diagnostic report",
		Long: `Report parses the workbook and prints counts, per-line totals, flow-order
anomalies, and how the file was read. A failed parse is reported and the
command exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if record && app.Ingests == nil {
				return errors.New("--record needs a history store")
			}

			ctx := cmd.Context()
			startedAt := app.now()
			res, parseErr := app.Schedule.ParseWithReport(ctx)

			if record {
				rec, err := app.Ingests.Record(ctx, startedAt, res, parseErr)
				if err != nil {
					return fmt.Errorf("recording ingest: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "recorded ingest %s\n", rec.ID)
			}

			out := cmd.OutOrStdout()
			if format.resolve(app.isTerminal()) == formatJSON {
				payload := map[string]any{"report": res.Report}
				if parseErr != nil {
					payload["error"] = parseErr.Error()
				} else {
					payload["snapshot"] = res.Snapshot
				}
				if err := writeJSON(out, payload); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatReport(res.Report, parseErr))
			}
			return parseErr
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	cmd.Flags().BoolVar(&record, "record", false, "Store the run's counts in the ingest history")
	return cmd
}
