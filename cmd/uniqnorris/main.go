package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/uniqnorris/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "uniqnorris [flags] DIRECTORY DIRECTORY [DIRECTORY...]",
		Short: "Find files unique to each directory",
		Long: `uniqnorris compares two or more directory trees and reports, for each
directory, the files that exist only there. Files match on exact filename by
default; with --by-content they match on content hash, which also catches
duplicates that were renamed.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", cli.Version, cli.Commit, cli.BuildDate),
		Args:          cobra.MinimumNArgs(2),
		RunE:          cli.RunCompare,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global and comparison flags
	cli.AddGlobalFlags(rootCmd)
	cli.AddCompareFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewVersionCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())

	return rootCmd.Execute()
}
