package models

import (
	"time"
)

// CompareMode defines how file identity is decided across directories
type CompareMode string

const (
	// CompareByName matches files on exact case-sensitive filename
	CompareByName CompareMode = "by-name"
	// CompareByContent matches files on content hash, catching renamed duplicates
	CompareByContent CompareMode = "by-content"
)

// UniqueFile is a single file classified as unique to one directory
type UniqueFile struct {
	// Name is the base filename
	Name string
	// Path is the absolute path of the file
	Path string
}

// UniqueSet is the complete, uncapped list of files unique to one directory,
// ordered by ascending filename. Preview capping belongs to presentation.
type UniqueSet []UniqueFile

// Names returns the filenames of the set in order
func (s UniqueSet) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// RootFailure records a supplied root that could not be compared
type RootFailure struct {
	Arg    string
	Reason string
}

// FileError records a file excluded from content comparison
type FileError struct {
	Path  string
	Error string
}

// Statistics holds comparison run metrics.
// Counts reflect successfully processed files only.
type Statistics struct {
	RootsSupplied int
	RootsCompared int
	RootsSkipped  int
	FilesScanned  int
	FilesHashed   int
	HashFailures  int
	UniqueFiles   int
}

// RunStatus represents the overall result of a comparison run
type RunStatus string

const (
	// StatusSuccess indicates every supplied root and file was processed
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates some roots or files were skipped
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates fewer than two usable roots remained
	StatusFailed RunStatus = "failed"
)

// ExitCode returns the process exit code for the run status.
// A partial run still produced a valid report, so it exits zero; only the
// global "at least two valid directories" precondition is fatal.
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess, StatusPartial:
		return 0
	default:
		return 1
	}
}

// Report is the result of one comparison run, consumed by the output
// formatters. Build-once, read-only, never persisted.
type Report struct {
	// RunID identifies this run in logs
	RunID string

	// Mode is the identity key choice used
	Mode CompareMode

	// Algorithm is the hash algorithm name, content mode only
	Algorithm string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Directories are the resolved roots in comparison order
	Directories []Directory

	// Unique maps a directory's canonical path to its unique files
	Unique map[string]UniqueSet

	// FailedRoots lists supplied roots that were skipped
	FailedRoots []RootFailure

	// ReadErrors lists files excluded from content comparison
	ReadErrors []FileError

	Stats  Statistics
	Status RunStatus
}

// UniqueFor returns the unique set for a directory
func (r *Report) UniqueFor(dir Directory) UniqueSet {
	return r.Unique[dir.Path]
}
