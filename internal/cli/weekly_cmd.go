package cli

import (
	"fmt"

	"github.com/alexanderramin/prodsched/internal/cli/formatter"
	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/spf13/cobra"
)

func newWeeklyCmd(app *App) *cobra.Command {
	var format outputFormat
	var line, department string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "List actual runs expanded to one row per week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dept := domain.Department(department)
			if dept != "" && !domain.ValidDepartments[dept] {
				return fmt.Errorf("unknown department %q", department)
			}

			rows := service.FilterWeekly(app.Schedule.Weekly(cmd.Context()), service.WeeklyFilter{
				Line:       domain.ProductLine(line),
				Department: dept,
			})
			if format.resolve(app.isTerminal()) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekly(rows))
			return nil
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	cmd.Flags().StringVar(&line, "line", "", "Only rows for this product-line tag")
	cmd.Flags().StringVar(&department, "department", "", "Only rows for this department")
	return cmd
}
