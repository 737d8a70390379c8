package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/uniqnorris/pkg/engine"
	"github.com/sdejongh/uniqnorris/pkg/hashing"
	"github.com/sdejongh/uniqnorris/pkg/logging"
	"github.com/sdejongh/uniqnorris/pkg/models"
	"github.com/sdejongh/uniqnorris/pkg/output"
	"github.com/sdejongh/uniqnorris/pkg/scan"
)

// RunCompare executes the comparison for the root command
func RunCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Close()

	scanner := scan.New(scan.Options{
		FollowSymlinks: cfg.Compare.FollowSymlinks,
		Exclude:        cfg.Exclude,
		OnWarning: func(path string, err error) {
			logger.Warn(ctx, "skipping unreadable entry", logging.Fields{
				"path":   path,
				"reason": err.Error(),
			})
		},
	})

	var hasher hashing.Hasher
	var progress output.ProgressReporter
	if cfg.Compare.Mode == models.CompareByContent {
		hasher, err = hashing.NewFileHasher(
			hashing.Algorithm(cfg.Compare.Algorithm),
			cfg.Performance.ChunkSize,
		)
		if err != nil {
			return err
		}

		if !cfg.Output.Quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Comparing files by content (this may take a while)...")
		}
		if cfg.Output.Progress && !cfg.Output.Quiet {
			progress = output.NewBarReporter(cmd.ErrOrStderr())
		}
	}

	eng := engine.New(scanner, hasher, logger, engine.Options{
		Mode:       cfg.Compare.Mode,
		MaxWorkers: cfg.Performance.MaxWorkers,
		Progress:   progress,
	})

	report, err := eng.Run(ctx, args)
	if err != nil {
		return err
	}

	formatter, err := output.New(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := formatter.Write(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	os.Exit(report.Status.ExitCode())
	return nil
}
