package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

// JSONFormatter renders the report as JSON for automation and scripting
type JSONFormatter struct{}

// JSONReport is the top-level JSON document
type JSONReport struct {
	RunID       string              `json:"run_id"`
	Mode        string              `json:"mode"`
	Algorithm   string              `json:"algorithm,omitempty"`
	StartedAt   time.Time           `json:"started_at"`
	DurationMs  int64               `json:"duration_ms"`
	Directories []JSONDirectoryData `json:"directories"`
	Skipped     []JSONSkippedRoot   `json:"skipped_roots,omitempty"`
	ReadErrors  []JSONReadError     `json:"read_errors,omitempty"`
	Stats       JSONStatsData       `json:"stats"`
	Status      string              `json:"status"`
}

// JSONDirectoryData holds one directory's unique files.
// The list is complete; preview capping only applies to text output.
type JSONDirectoryData struct {
	Path        string           `json:"path"`
	UniqueCount int              `json:"unique_count"`
	Unique      []JSONUniqueFile `json:"unique"`
}

// JSONUniqueFile is a single unique file
type JSONUniqueFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// JSONSkippedRoot records a root that could not be compared
type JSONSkippedRoot struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// JSONReadError records a file excluded from content comparison
type JSONReadError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// JSONStatsData holds the run statistics
type JSONStatsData struct {
	RootsSupplied int `json:"roots_supplied"`
	RootsCompared int `json:"roots_compared"`
	RootsSkipped  int `json:"roots_skipped"`
	FilesScanned  int `json:"files_scanned"`
	FilesHashed   int `json:"files_hashed,omitempty"`
	HashFailures  int `json:"hash_failures,omitempty"`
	UniqueFiles   int `json:"unique_files"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Write renders the report to w
func (f *JSONFormatter) Write(w io.Writer, report *models.Report) error {
	doc := JSONReport{
		RunID:      report.RunID,
		Mode:       string(report.Mode),
		Algorithm:  report.Algorithm,
		StartedAt:  report.StartTime,
		DurationMs: report.Duration.Milliseconds(),
		Status:     string(report.Status),
		Stats: JSONStatsData{
			RootsSupplied: report.Stats.RootsSupplied,
			RootsCompared: report.Stats.RootsCompared,
			RootsSkipped:  report.Stats.RootsSkipped,
			FilesScanned:  report.Stats.FilesScanned,
			FilesHashed:   report.Stats.FilesHashed,
			HashFailures:  report.Stats.HashFailures,
			UniqueFiles:   report.Stats.UniqueFiles,
		},
	}

	for _, dir := range report.Directories {
		set := report.UniqueFor(dir)
		data := JSONDirectoryData{
			Path:        dir.Path,
			UniqueCount: len(set),
			Unique:      make([]JSONUniqueFile, 0, len(set)),
		}
		for _, file := range set {
			data.Unique = append(data.Unique, JSONUniqueFile{
				Name: file.Name,
				Path: file.Path,
			})
		}
		doc.Directories = append(doc.Directories, data)
	}

	for _, failure := range report.FailedRoots {
		doc.Skipped = append(doc.Skipped, JSONSkippedRoot{
			Path:   failure.Arg,
			Reason: failure.Reason,
		})
	}

	for _, readErr := range report.ReadErrors {
		doc.ReadErrors = append(doc.ReadErrors, JSONReadError{
			Path:  readErr.Path,
			Error: readErr.Error,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
