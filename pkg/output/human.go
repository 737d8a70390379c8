package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sdejongh/uniqnorris/pkg/models"
)

// HumanFormatter renders the report as a per-directory text listing
type HumanFormatter struct {
	header *color.Color
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{
		header: color.New(color.FgCyan, color.Bold),
	}
}

// Write renders the report to w
func (f *HumanFormatter) Write(w io.Writer, report *models.Report) error {
	if report.Mode == models.CompareByContent {
		fmt.Fprintf(w, "Files unique to each directory (by content):\n\n")
	} else {
		fmt.Fprintf(w, "Files unique to each directory (by filename):\n\n")
	}

	for _, dir := range report.Directories {
		set := report.UniqueFor(dir)

		if len(set) == 0 {
			f.header.Fprintf(w, "%s/", dir.Path)
			fmt.Fprintf(w, "  (no unique files)\n\n")
			continue
		}

		f.header.Fprintf(w, "%s/", dir.Path)
		fmt.Fprintf(w, "  (%d unique files)\n", len(set))

		shown := len(set)
		if shown > PreviewLimit {
			shown = PreviewLimit
		}
		for _, file := range set[:shown] {
			fmt.Fprintf(w, "   - %s\n", file.Name)
		}
		if remaining := len(set) - shown; remaining > 0 {
			fmt.Fprintf(w, "   ... and %d more\n", remaining)
		}
		fmt.Fprintln(w)
	}

	if len(report.FailedRoots) > 0 {
		fmt.Fprintf(w, "Skipped directories:\n")
		for _, failure := range report.FailedRoots {
			fmt.Fprintf(w, "   - %s (%s)\n", failure.Arg, failure.Reason)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
