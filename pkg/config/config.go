package config

import (
	"github.com/sdejongh/uniqnorris/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Compare     CompareConfig     `yaml:"compare"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Exclude     []string          `yaml:"exclude"`
}

// CompareConfig holds comparison-related settings
type CompareConfig struct {
	Mode           models.CompareMode `yaml:"mode"`            // "by-name" or "by-content"
	Algorithm      string             `yaml:"algorithm"`       // "md5" or "sha256"
	FollowSymlinks bool               `yaml:"follow_symlinks"` // include symlinked files
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	MaxWorkers int `yaml:"max_workers"` // parallel hashing workers
	ChunkSize  int `yaml:"chunk_size"`  // hash read size in bytes
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human", "json" or "table"
	Progress bool   `yaml:"progress"` // show a progress bar while hashing
	Quiet    bool   `yaml:"quiet"`    // suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Format     string `yaml:"format"`      // "json" or "text"
	Level      string `yaml:"level"`       // "debug", "info", "warn", "error"
	File       string `yaml:"file"`        // log file path (empty = stderr only)
	MaxSizeMB  int    `yaml:"max_size_mb"` // rotation threshold
	MaxBackups int    `yaml:"max_backups"` // rotated files to keep
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			Mode:           models.CompareByName,
			Algorithm:      "md5",
			FollowSymlinks: false,
		},
		Performance: PerformanceConfig{
			MaxWorkers: 5,
			ChunkSize:  8192,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Format:     "text",
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Exclude: []string{},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Compare.Mode {
	case models.CompareByName, models.CompareByContent:
	default:
		return &models.ValidationError{
			Field:   "compare.mode",
			Message: "must be 'by-name' or 'by-content'",
		}
	}

	validAlgorithms := map[string]bool{"md5": true, "sha256": true}
	if !validAlgorithms[c.Compare.Algorithm] {
		return &models.ValidationError{
			Field:   "compare.algorithm",
			Message: "must be 'md5' or 'sha256'",
		}
	}

	if c.Performance.MaxWorkers < 1 {
		return &models.ValidationError{
			Field:   "performance.max_workers",
			Message: "must be at least 1",
		}
	}

	if c.Performance.ChunkSize < 512 {
		return &models.ValidationError{
			Field:   "performance.chunk_size",
			Message: "must be at least 512 bytes",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true, "table": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human', 'json' or 'table'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
