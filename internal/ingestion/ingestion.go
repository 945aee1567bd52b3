package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/salesledger/internal/logger"
	"github.com/guttosm/salesledger/internal/storage"
)

const (
	fileExt          = ".csv"
	maxParallelFiles = 8
)

// ErrNoFiles is returned when the import directory holds no .csv files.
var ErrNoFiles = errors.New("no .csv files found")

// Summary reports what ProcessDirectory did.
type Summary struct {
	Files   int // files seen
	Skipped int // files already present in the import log
	Sales   int // sales stored
	Rows    int // line items stored
}

// ProcessDirectory imports every "*.csv" sales file in dir into repo.
//
// Behavior:
//   - Files are processed concurrently, at most `parallel` at a time
//     (clamped to 1..8; <= 0 means min(NumCPU, 8)).
//   - A file already recorded in the import log is skipped.
//   - Each file is parsed completely, then stored together with its import
//     log entry in one SaveImport call, so a failed file leaves no sales
//     behind and is retried whole on the next run.
//   - If any file fails, the remaining ones are canceled and that error is returned.
func ProcessDirectory(ctx context.Context, dir string, repo storage.SalesRepository, parallel int) (Summary, error) {
	log := logger.Component("importer")

	files, err := listFiles(dir)
	if err != nil {
		return Summary{}, err
	}

	maxParallel := clampParallel(parallel)
	log.Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("import start")

	results := make([]Summary, len(files))

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		idx, f := i, file
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(f)

			done, err := repo.HasImport(gctx, base)
			if err != nil {
				log.Error().Str("file", base).Err(err).Msg("check import log failed")
				return fmt.Errorf("file %s: check import log: %w", base, err)
			}
			if done {
				log.Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already imported")
				results[idx].Skipped = 1
				return nil
			}

			sales, rows, err := parseFile(gctx, f)
			if err != nil {
				log.Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", base, err)
			}
			if err := repo.SaveImport(gctx, base, rows, sales); err != nil {
				log.Error().Str("file", base).Err(err).Msg("store failed")
				return fmt.Errorf("file %s: store: %w", base, err)
			}

			results[idx] = Summary{Sales: len(sales), Rows: rows}
			log.Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).
				Int("sales", len(sales)).Int("rows", rows).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Files: len(files)}
	for _, r := range results {
		sum.Skipped += r.Skipped
		sum.Sales += r.Sales
		sum.Rows += r.Rows
	}
	log.Info().Int("files", sum.Files).Int("skipped", sum.Skipped).Int("sales", sum.Sales).Int("rows", sum.Rows).Msg("import done")
	return sum, nil
}

// listFiles returns the .csv files of dir in lexical order.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fileExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}
	sort.Strings(files)
	return files, nil
}

func clampParallel(parallel int) int {
	if parallel <= 0 {
		return min(runtime.NumCPU(), maxParallelFiles)
	}
	return min(parallel, maxParallelFiles)
}
