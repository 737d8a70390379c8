package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// ProgressReporter receives hashing progress during a content-mode run.
// Implementations must tolerate concurrent Increment calls.
type ProgressReporter interface {
	// Start begins a new progress session for total files
	Start(total int)

	// Increment records one hashed (or failed) file
	Increment()

	// Finish ends the session
	Finish()
}

// BarReporter renders a terminal progress bar on the given writer,
// typically stderr so the report on stdout stays clean.
type BarReporter struct {
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewBarReporter creates a progress bar reporter writing to w
func NewBarReporter(w io.Writer) *BarReporter {
	return &BarReporter{writer: w}
}

// Start begins a new progress session
func (r *BarReporter) Start(total int) {
	r.bar = pb.Simple.New(total).SetWriter(r.writer)
	r.bar.Start()
}

// Increment records one processed file
func (r *BarReporter) Increment() {
	if r.bar != nil {
		r.bar.Increment()
	}
}

// Finish ends the session
func (r *BarReporter) Finish() {
	if r.bar != nil {
		r.bar.Finish()
		r.bar = nil
	}
}

// NullReporter discards all progress updates
type NullReporter struct{}

// NewNullReporter creates a reporter that does nothing
func NewNullReporter() *NullReporter {
	return &NullReporter{}
}

// Start does nothing
func (r *NullReporter) Start(total int) {}

// Increment does nothing
func (r *NullReporter) Increment() {}

// Finish does nothing
func (r *NullReporter) Finish() {}
