package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/farxc/cnpj_registry/internal/feed"
	"github.com/farxc/cnpj_registry/internal/logger"
	"github.com/farxc/cnpj_registry/internal/store"
)

type classificationWriter interface {
	UpsertClassifications(ctx context.Context, items []store.Classification) (int64, error)
}

type loadRecorder interface {
	InsertLoadHistory(ctx context.Context, h *store.LoadHistory) error
}

// runLoad loads the feed at file, or downloads it first when url is set,
// and records the run in the load history whatever the outcome.
// url "receita" selects the official dump.
func runLoad(ctx context.Context, file, url string, opts feed.Options, w classificationWriter, rec loadRecorder, appLogger *logger.Logger) (int64, error) {
	// The history row is written even when ctx was cancelled mid-load.
	recordCtx := context.WithoutCancel(ctx)

	if url != "" {
		if url == "receita" {
			url = feed.ReceitaCNAEURL
		}

		tmpDir, err := os.MkdirTemp("", "cnae-feed-")
		if err != nil {
			err = fmt.Errorf("failed to create temporary directory: %w", err)
			recordLoad(recordCtx, rec, url, 0, err, appLogger)
			return 0, err
		}
		defer os.RemoveAll(tmpDir)

		file, err = fetchFeed(ctx, url, tmpDir, appLogger)
		if err != nil {
			err = fmt.Errorf("feed download failed: %w", err)
			recordLoad(recordCtx, rec, url, 0, err, appLogger)
			return 0, err
		}
		opts.Headerless = true
	}

	n, err := loadClassifications(ctx, file, opts, w, appLogger)
	recordLoad(recordCtx, rec, filepath.Base(file), n, err, appLogger)
	return n, err
}

// fetchFeed downloads the zipped feed at url into dir and returns the path
// of the single table it holds.
func fetchFeed(ctx context.Context, url, dir string, appLogger *logger.Logger) (string, error) {
	client := &http.Client{Timeout: 5 * time.Minute}
	zipPath, err := feed.Download(ctx, client, url, dir, appLogger)
	if err != nil {
		return "", err
	}

	files, err := feed.Unzip(zipPath, filepath.Join(dir, "data"), appLogger)
	if err != nil {
		return "", err
	}
	if len(files) != 1 {
		return "", fmt.Errorf("expected one file in %s, found %d", url, len(files))
	}
	return files[0], nil
}

// loadClassifications reads the feed at path and upserts its rows in one
// transaction. It returns the number of rows written.
func loadClassifications(ctx context.Context, path string, opts feed.Options, w classificationWriter, appLogger *logger.Logger) (int64, error) {
	const component = "Loader"

	df, err := feed.OpenFileAndDecode(path, opts)
	if err != nil {
		return 0, err
	}
	appLogger.Debug(component, "Feed decoded: file=%s rows=%d columns=%v", path, df.Nrow(), df.Names())

	items, err := feed.Classifications(df, opts)
	if err != nil {
		return 0, err
	}
	if skipped := df.Nrow() - len(items); skipped > 0 {
		appLogger.Warn(component, "Skipped rows without code or description: file=%s skipped=%d", path, skipped)
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("no classifications found in %s", path)
	}

	n, err := w.UpsertClassifications(ctx, items)
	if err != nil {
		return 0, err
	}
	appLogger.Info(component, "Classifications loaded: file=%s rows=%d", path, n)
	return n, nil
}

// recordLoad keeps an audit row of the run. A failure to record is logged
// and does not change the outcome of the load.
func recordLoad(ctx context.Context, r loadRecorder, source string, rows int64, loadErr error, appLogger *logger.Logger) {
	const component = "LoadHistory"

	h := &store.LoadHistory{
		SourceFile: source,
		Status:     store.LoadStatusSuccess,
		RowsLoaded: rows,
	}
	if loadErr != nil {
		h.Status = store.LoadStatusFailure
		h.Message = loadErr.Error()
	}

	if err := r.InsertLoadHistory(ctx, h); err != nil {
		appLogger.Warn(component, "Failed to record load: source=%s error=%v", source, err)
		return
	}
	appLogger.Debug(component, "Load recorded: id=%d status=%s", h.ID, h.Status)
}
