package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"volby-scraper/internal/components/telemetry"
	"volby-scraper/internal/config"
	"volby-scraper/internal/db"
	"volby-scraper/internal/results"
	"volby-scraper/internal/scrapers/volby"
	"volby-scraper/internal/snapshot"
	"volby-scraper/internal/validate"

	"github.com/spf13/cobra"
)

var errNoStoredRun = errors.New("no stored run found")

func newExportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export --db <path|url> <results_*.csv>",
		Short: "Writes a run stored with --db back out as a CSV file.",
		Long: `export reads a run stored by an earlier scrape with --db and writes it in the
same format the scrape wrote, without touching the network. The latest run is
exported unless --run names another one.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return export(cmd.Context(), *opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dbTarget, "db", "", "The sqlite file or libsql url runs were stored in.")
	flags.Int64Var(&opts.runID, "run", 0, "The id of the run to export, 0 means the latest one.")
	cmd.MarkFlagRequired("db")

	return cmd
}

func export(ctx context.Context, opts options, filename string) error {
	telemetry.InitSlog(opts.stderr, opts.verbose)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	err = validate.CheckFilename(filename)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(opts.dbTarget, cfg.DbAuthToken)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer database.Close()

	api := telemetry.NewScopedAPI("volby_scraper", telemetry.SlogAPI{})
	store := snapshot.NewSnapshot(db.New(database), db.NewMakeTx(database), api)

	var run snapshot.Run
	if opts.runID > 0 {
		run, err = store.Pull(ctx, opts.runID)
	} else {
		run, err = store.Latest(ctx)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w in %s", errNoStoredRun, opts.dbTarget)
	}
	if err != nil {
		return err
	}

	header, err := results.WriteCSVFile(filename, volby.Records(run.Results))
	if err != nil {
		return err
	}
	slog.Info(
		"exported run",
		"run_id", run.ID,
		"source", run.SourceLink,
		"scraped_at", run.ScrapedAt,
		"file", filename,
		"columns", len(header),
	)
	return nil
}
