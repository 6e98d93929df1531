package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/prodsched/internal/cli"
	"github.com/alexanderramin/prodsched/internal/config"
	"github.com/alexanderramin/prodsched/internal/db"
	"github.com/alexanderramin/prodsched/internal/layout"
	"github.com/alexanderramin/prodsched/internal/repository"
	"github.com/alexanderramin/prodsched/internal/service"
	"github.com/alexanderramin/prodsched/internal/workbook"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The layout is compiled once and shared read-only by every parse.
	layoutMap, err := layout.Compile(cfg.Layout)
	if err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogParses {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	acquirer := workbook.NewAcquirer(cfg.Source.Attempts, cfg.Backoff(), logger)
	scheduleSvc := service.NewScheduleService(service.Source{
		Path:         cfg.Source.Path,
		FallbackPath: cfg.Source.FallbackPath,
		YearHint:     cfg.Source.YearHint,
	}, layoutMap, acquirer, observer)

	app := &cli.App{
		Schedule:   scheduleSvc,
		ListenAddr: cfg.Server.Listen,
	}
	if ingestSvc, database := openHistory(cfg.Store.DBPath, logger); ingestSvc != nil {
		defer database.Close()
		app.Ingests = ingestSvc
	}

	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// openHistory opens the ingest history store. Parsing does not depend on it,
// so a store that cannot be opened is logged and left unset.
func openHistory(dbPath string, logger *slog.Logger) (service.IngestService, *sql.DB) {
	if dbPath == "" {
		logger.Warn("ingest history disabled: no database path")
		return nil, nil
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		logger.Warn("ingest history disabled", "path", dbPath, "error", err.Error())
		return nil, nil
	}
	uow := db.NewSQLiteUnitOfWork(database)
	return service.NewIngestService(repository.NewSQLiteIngestRepo(database), uow), database
}
