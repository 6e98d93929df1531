package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var format outputFormat
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded ingests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Ingests == nil {
				return errors.New("no history store configured")
			}
			recs, err := app.Ingests.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if format.resolve(app.isTerminal()) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), recs)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(recs, app.now()))
			return nil
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum records to show (0 for all)")
	return cmd
}
