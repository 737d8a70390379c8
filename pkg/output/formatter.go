package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

// PreviewLimit caps how many filenames a text formatter lists per
// directory. The underlying unique sets stay complete; formatters always
// print the true total even when the listing is truncated.
const PreviewLimit = 50

// Formatter renders a comparison report
type Formatter interface {
	// Write renders the report to w
	Write(w io.Writer, report *models.Report) error

	// Name returns the formatter name
	Name() string
}

// New creates a formatter by name
func New(format string) (Formatter, error) {
	switch format {
	case "human":
		return NewHumanFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "table":
		return NewTableFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: human, json, table)", format)
	}
}
