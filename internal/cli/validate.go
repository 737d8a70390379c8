package cli

import (
	"os"

	"github.com/sdejongh/uniqnorris/pkg/config"
	"github.com/sdejongh/uniqnorris/pkg/logging"
	"github.com/sdejongh/uniqnorris/pkg/models"
)

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	if compareFlags.ByContent {
		cfg.Compare.Mode = models.CompareByContent
	}

	if compareFlags.FollowSymlinks {
		cfg.Compare.FollowSymlinks = true
	}

	if compareFlags.Algorithm != "" {
		cfg.Compare.Algorithm = compareFlags.Algorithm
	}

	// Parallel hashing workers (default: 5)
	if compareFlags.Parallel > 0 {
		cfg.Performance.MaxWorkers = compareFlags.Parallel
	} else if cfg.Performance.MaxWorkers == 0 {
		cfg.Performance.MaxWorkers = 5
	}

	if len(compareFlags.Exclude) > 0 {
		cfg.Exclude = compareFlags.Exclude
	}

	if compareFlags.Output != "" {
		cfg.Output.Format = compareFlags.Output
	}

	if compareFlags.NoProgress {
		cfg.Output.Progress = false
	}

	if compareFlags.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = compareFlags.LogFile
		cfg.Logging.Format = compareFlags.LogFormat
	}
	if compareFlags.LogLevel != "" {
		cfg.Logging.Level = compareFlags.LogLevel
	}

	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}
}

// buildLogger builds the run logger from configuration.
// Console warnings always reach stderr unless logging is disabled
// entirely; unreadable-file diagnostics must never be silent.
func buildLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	level := logging.ParseLevel(cfg.Logging.Level)

	if cfg.Logging.File == "" {
		return logging.NewConsoleLogger(os.Stderr, level), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.Logging.File,
		Format:     logging.Format(cfg.Logging.Format),
		Level:      level,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}
