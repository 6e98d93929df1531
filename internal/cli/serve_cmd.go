package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/prodsched/internal/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve parse results read-only over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := listen
			if addr == "" {
				addr = app.ListenAddr
			}

			gin.SetMode(gin.ReleaseMode)
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			router := httpapi.NewRouter(httpapi.NewHandler(app.Schedule, app.Ingests), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return httpapi.Serve(ctx, addr, router, logger)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (defaults to the configured server.listen)")
	return cmd
}
