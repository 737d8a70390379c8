package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// CompareFlags holds the comparison flags of the root command
type CompareFlags struct {
	ByContent      bool
	FollowSymlinks bool
	Algorithm      string
	Parallel       int
	Exclude        []string
	Output         string
	NoProgress     bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var compareFlags CompareFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/uniqnorris/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}

// AddCompareFlags adds the comparison flags to the root command
func AddCompareFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&compareFlags.ByContent, "by-content", false,
		"compare by file content (hash) instead of just filename (slower but more accurate)")
	cmd.Flags().BoolVar(&compareFlags.FollowSymlinks, "follow-symlinks", false,
		"include symlinked files when comparing by name")
	cmd.Flags().StringVar(&compareFlags.Algorithm, "algorithm", "",
		"hash algorithm for content comparison: md5, sha256")
	cmd.Flags().IntVarP(&compareFlags.Parallel, "parallel", "p", 0,
		"number of parallel hashing workers (default: 5)")
	cmd.Flags().StringSliceVar(&compareFlags.Exclude, "exclude", []string{},
		"glob patterns to exclude")
	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "",
		"output format: human, json, table")
	cmd.Flags().BoolVar(&compareFlags.NoProgress, "no-progress", false,
		"disable the hashing progress bar")

	cmd.Flags().StringVar(&compareFlags.LogFile, "log-file", "",
		"write logs to file (enables file logging)")
	cmd.Flags().StringVar(&compareFlags.LogFormat, "log-format", "text",
		"log format: text, json")
	cmd.Flags().StringVar(&compareFlags.LogLevel, "log-level", "info",
		"log level: debug, info, warn, error")
}
