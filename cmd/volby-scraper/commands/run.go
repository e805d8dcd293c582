package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"volby-scraper/internal/components/telemetry"
	"volby-scraper/internal/config"
	"volby-scraper/internal/db"
	"volby-scraper/internal/results"
	"volby-scraper/internal/scrapers/volby"
	"volby-scraper/internal/snapshot"
	"volby-scraper/internal/validate"
	"volby-scraper/lib/restyutil"
)

const serviceName = "volby-scraper"

var errRegionRequestFailed = errors.New("region page request failed")

func run(ctx context.Context, opts options, link, filename string) error {
	telemetry.InitSlog(opts.stderr, opts.verbose)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	err = validate.CheckLink(link, cfg.LinkPrefix)
	if err != nil {
		return err
	}
	err = validate.CheckFilename(filename)
	if err != nil {
		return err
	}

	tel, err := telemetry.SetupFromEnv(ctx, serviceName)
	if err != nil {
		slog.Warn("failed to setup telemetry, continuing without it", "err", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		err := tel.Shutdown(shutdownCtx)
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	}()

	api := telemetry.NewScopedAPI("volby_scraper", telemetry.SlogAPI{})

	clientOpts := volby.ClientOptions{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout(),
	}
	if opts.dumpDir != "" {
		dump, err := restyutil.NewFilesystemOutput(opts.dumpDir)
		if err != nil {
			return fmt.Errorf("prepare http dump directory: %w", err)
		}
		clientOpts.Dump = dump
	}
	scraper := volby.NewScraper(volby.NewClient(clientOpts, api), api)

	start := time.Now()
	scraped, err := scraper.Scrape(ctx, link)
	if err != nil {
		var statusErr *volby.StatusError
		if errors.As(err, &statusErr) && statusErr.URL == link {
			return fmt.Errorf("%w: %w", errRegionRequestFailed, err)
		}
		return err
	}

	records := volby.Records(scraped)
	header, err := results.WriteCSVFile(filename, records)
	if err != nil {
		return err
	}
	slog.Info(
		"wrote results",
		"file", filename,
		"municipalities", len(records),
		"columns", len(header),
		"seconds", time.Since(start).Seconds(),
	)

	if opts.xlsxPath != "" {
		err = results.WriteXLSX(opts.xlsxPath, header, records)
		if err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		slog.Info("wrote workbook", "file", opts.xlsxPath)
	}

	if opts.dbTarget != "" {
		runID, err := storeRun(ctx, opts.dbTarget, cfg.DbAuthToken, link, scraped, api)
		if err != nil {
			return fmt.Errorf("store run: %w", err)
		}
		slog.Info("stored run", "db", opts.dbTarget, "run_id", runID)
	}

	if opts.table {
		results.RenderSummary(opts.stdout, records, volby.FixedFields, "parties")
	}

	return nil
}

func storeRun(ctx context.Context, target, authToken, link string, scraped []volby.Result, tel telemetry.API) (int64, error) {
	database, err := db.OpenDB(target, authToken)
	if err != nil {
		return 0, err
	}
	defer database.Close()

	store := snapshot.NewSnapshot(db.New(database), db.NewMakeTx(database), tel)
	return store.Push(ctx, link, time.Now(), scraped)
}
