package cli

import (
	"time"

	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Schedule service.ScheduleService
	// Ingests is nil when no history store is configured.
	Ingests service.IngestService

	// ListenAddr is the default address for `serve`.
	ListenAddr string

	// IsTerminal reports whether stdout is a terminal; it drives --format auto.
	IsTerminal func() bool
	// Now is the clock used for history timestamps.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) isTerminal() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}

// NewRootCmd creates the top-level "prodsched" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "prodsched",
		Short:         "Production schedule spreadsheet extractor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newParseCmd(app),
		newReportCmd(app),
		newWeeklyCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)

	return root
}
