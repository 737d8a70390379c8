package models

import "fmt"

// InvalidRootError indicates a compared root that does not exist or is not
// a directory. The run continues with the remaining roots; only dropping
// below two usable roots is fatal.
type InvalidRootError struct {
	Path string
	Err  error
}

func (e *InvalidRootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("'%s' is not a directory or does not exist: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("'%s' is not a directory or does not exist", e.Path)
}

func (e *InvalidRootError) Unwrap() error {
	return e.Err
}

// ReadError indicates a file that could not be opened or read while hashing.
// The file is excluded from content comparison for the rest of the run.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
