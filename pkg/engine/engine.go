// Package engine drives a comparison run: resolve roots, scan trees,
// hash in content mode, build the identity index and derive per-directory
// unique sets.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sdejongh/uniqnorris/pkg/hashing"
	"github.com/sdejongh/uniqnorris/pkg/index"
	"github.com/sdejongh/uniqnorris/pkg/logging"
	"github.com/sdejongh/uniqnorris/pkg/models"
	"github.com/sdejongh/uniqnorris/pkg/output"
	"github.com/sdejongh/uniqnorris/pkg/scan"
)

// Options configure a comparison run
type Options struct {
	// Mode selects the identity key (by-name or by-content)
	Mode models.CompareMode

	// MaxWorkers bounds parallel hashing in content mode
	MaxWorkers int

	// Progress receives hashing progress; nil disables
	Progress output.ProgressReporter
}

// Engine executes comparison runs
type Engine struct {
	scanner  *scan.Scanner
	hasher   hashing.Hasher
	logger   logging.Logger
	mode     models.CompareMode
	workers  int
	progress output.ProgressReporter
}

// New creates a comparison engine. The hasher may be nil in name mode.
func New(scanner *scan.Scanner, hasher hashing.Hasher, logger logging.Logger, opts Options) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if opts.Progress == nil {
		opts.Progress = output.NewNullReporter()
	}
	if opts.MaxWorkers < 1 {
		opts.MaxWorkers = 1
	}
	if opts.Mode == "" {
		opts.Mode = models.CompareByName
	}

	return &Engine{
		scanner:  scanner,
		hasher:   hasher,
		logger:   logger,
		mode:     opts.Mode,
		workers:  opts.MaxWorkers,
		progress: opts.Progress,
	}
}

// Run compares the supplied root paths and returns the report.
// Per-file and per-root failures are recorded and the run continues;
// the only fatal condition is fewer than two usable roots, in which case
// the returned error is non-nil and the report status is failed.
func (e *Engine) Run(ctx context.Context, roots []string) (*models.Report, error) {
	report := &models.Report{
		RunID:     uuid.New().String(),
		Mode:      e.mode,
		StartTime: time.Now(),
		Unique:    make(map[string]models.UniqueSet),
	}
	if e.mode == models.CompareByContent && e.hasher != nil {
		report.Algorithm = string(e.hasher.Algorithm())
	}
	report.Stats.RootsSupplied = len(roots)

	log := e.logger.WithFields(logging.Fields{"run_id": report.RunID})
	log.Info(ctx, "starting comparison", logging.Fields{
		"mode":  string(e.mode),
		"roots": len(roots),
	})

	dirs := e.resolveRoots(ctx, roots, report, log)
	if len(dirs) < 2 {
		report.Status = models.StatusFailed
		e.finish(report)
		return report, fmt.Errorf("need at least 2 valid directories to compare, got %d", len(dirs))
	}
	report.Directories = dirs
	report.Stats.RootsCompared = len(dirs)

	partials, err := e.buildPartials(ctx, dirs, report, log)
	if err != nil {
		report.Status = models.StatusFailed
		e.finish(report)
		return report, err
	}

	ix := index.Merge(e.mode, partials)
	report.Unique = index.Resolve(ix, dirs)

	for _, set := range report.Unique {
		report.Stats.UniqueFiles += len(set)
	}

	if len(report.FailedRoots) > 0 || len(report.ReadErrors) > 0 {
		report.Status = models.StatusPartial
	} else {
		report.Status = models.StatusSuccess
	}
	e.finish(report)

	log.Info(ctx, "comparison finished", logging.Fields{
		"status":       string(report.Status),
		"files":        report.Stats.FilesScanned,
		"unique_files": report.Stats.UniqueFiles,
		"duration":     report.Duration.String(),
	})

	return report, nil
}

// resolveRoots canonicalizes the supplied paths, drops invalid ones with a
// diagnostic and deduplicates roots that resolve to the same directory.
func (e *Engine) resolveRoots(ctx context.Context, roots []string, report *models.Report, log logging.Logger) []models.Directory {
	seen := make(map[string]string)
	var dirs []models.Directory

	for _, arg := range roots {
		dir, err := scan.ResolveRoot(arg)
		if err != nil {
			report.FailedRoots = append(report.FailedRoots, models.RootFailure{
				Arg:    arg,
				Reason: err.Error(),
			})
			report.Stats.RootsSkipped++
			log.Warn(ctx, "skipping invalid directory", logging.Fields{
				"path":   arg,
				"reason": err.Error(),
			})
			continue
		}

		if prev, dup := seen[dir.Path]; dup {
			log.Warn(ctx, "duplicate directory argument, comparing once", logging.Fields{
				"path":  arg,
				"first": prev,
			})
			continue
		}
		seen[dir.Path] = arg
		dirs = append(dirs, dir)
	}

	return dirs
}

// buildPartials scans every directory and keys its files, hashing them
// in content mode.
func (e *Engine) buildPartials(ctx context.Context, dirs []models.Directory, report *models.Report, log logging.Logger) ([]*index.Partial, error) {
	var scanned [][]models.FileEntry
	for _, dir := range dirs {
		entries, err := e.scanner.Scan(ctx, dir)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			report.FailedRoots = append(report.FailedRoots, models.RootFailure{
				Arg:    dir.Arg,
				Reason: err.Error(),
			})
			log.Warn(ctx, "directory scan failed", logging.Fields{
				"path":   dir.Path,
				"reason": err.Error(),
			})
			entries = nil
		}
		report.Stats.FilesScanned += len(entries)
		scanned = append(scanned, entries)
	}

	partials := make([]*index.Partial, len(dirs))
	for i, dir := range dirs {
		partials[i] = index.NewPartial(dir)
	}

	if e.mode == models.CompareByName {
		for i := range dirs {
			for _, entry := range scanned[i] {
				partials[i].Add(entry.Name, entry)
			}
		}
		return partials, nil
	}

	return partials, e.hashInto(ctx, scanned, partials, report, log)
}

// hashInto fills content-mode partials with hash-keyed entries.
// Hashing is parallel across files, but entries are appended in scan
// order afterwards so the index never depends on execution order.
func (e *Engine) hashInto(ctx context.Context, scanned [][]models.FileEntry, partials []*index.Partial, report *models.Report, log logging.Logger) error {
	if e.hasher == nil {
		return fmt.Errorf("content comparison requires a hasher")
	}

	var flat []models.FileEntry
	for _, entries := range scanned {
		flat = append(flat, entries...)
	}

	digests := make([]string, len(flat))
	failures := make([]error, len(flat))

	e.progress.Start(len(flat))
	defer e.progress.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range flat {
		i := i
		g.Go(func() error {
			digest, err := e.hasher.HashFile(gctx, flat[i].Path)
			if err != nil {
				if gctx.Err() != nil {
					return err
				}
				// Read failures stay isolated per file
				failures[i] = err
				e.progress.Increment()
				return nil
			}
			digests[i] = digest
			e.progress.Increment()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	pos := 0
	for p, entries := range scanned {
		for _, entry := range entries {
			digest, err := digests[pos], failures[pos]
			pos++

			if err != nil {
				report.Stats.HashFailures++
				report.ReadErrors = append(report.ReadErrors, models.FileError{
					Path:  entry.Path,
					Error: err.Error(),
				})
				log.Warn(ctx, "could not read file, excluded from comparison", logging.Fields{
					"path":   entry.Path,
					"reason": err.Error(),
				})
				continue
			}

			report.Stats.FilesHashed++
			partials[p].Add(digest, entry)
		}
	}

	return nil
}

func (e *Engine) finish(report *models.Report) {
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
}
