package models

import "path/filepath"

// Directory is a resolved comparison root.
// Identity is the canonical absolute path with symlinks resolved, fixed
// once at the start of a run.
type Directory struct {
	// Path is the canonical absolute path
	Path string

	// Arg is the path exactly as supplied on the command line
	Arg string
}

// Name returns the last path element of the directory
func (d Directory) Name() string {
	return filepath.Base(d.Path)
}

func (d Directory) String() string {
	return d.Path
}

// FileEntry is a single regular file discovered during a tree scan.
// Entries are created per scan and never mutated.
type FileEntry struct {
	// Dir is the comparison root the file was found under
	Dir Directory

	// Path is the absolute path of the file
	Path string

	// Name is the base filename, compared case-sensitively
	Name string
}
