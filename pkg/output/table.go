package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/sdejongh/uniqnorris/pkg/models"
)

// TableFormatter renders the report as a side-by-side column view,
// one column per directory.
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Write renders the report to w
func (f *TableFormatter) Write(w io.Writer, report *models.Report) error {
	headers := make([]string, len(report.Directories))
	columns := make([][]string, len(report.Directories))

	rows := 0
	for i, dir := range report.Directories {
		set := report.UniqueFor(dir)
		headers[i] = fmt.Sprintf("%s (%d unique)", dir.Name(), len(set))

		shown := len(set)
		if shown > PreviewLimit {
			shown = PreviewLimit
		}
		col := make([]string, 0, shown+1)
		for _, file := range set[:shown] {
			col = append(col, file.Name)
		}
		if remaining := len(set) - shown; remaining > 0 {
			col = append(col, fmt.Sprintf("... and %d more", remaining))
		}

		columns[i] = col
		if len(col) > rows {
			rows = len(col)
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for r := 0; r < rows; r++ {
		row := make([]string, len(columns))
		for c, col := range columns {
			if r < len(col) {
				row[c] = col[r]
			}
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// Name returns the formatter name
func (f *TableFormatter) Name() string {
	return "table"
}
