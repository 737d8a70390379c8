// Package scan enumerates the regular files under comparison roots.
//
// Hidden filtering is keyed on the final path segment only: a dot-prefixed
// file is skipped and a dot-prefixed directory is pruned, but non-hidden
// descendants of non-hidden directories are always included regardless of
// what the rest of the path looks like.
package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

// WarnFunc receives entries that could not be read during a walk.
// The entry is skipped; the scan continues.
type WarnFunc func(path string, err error)

// Options control scan behavior
type Options struct {
	// FollowSymlinks includes symlinked regular files as if regular.
	// Symlinked directories are never followed, regardless of this flag.
	FollowSymlinks bool

	// Exclude holds glob patterns; matching files and directories are
	// skipped the same way hidden entries are
	Exclude []string

	// OnWarning is invoked for unreadable entries; nil disables
	OnWarning WarnFunc
}

// Scanner produces the file entries of a directory tree
type Scanner struct {
	opts Options
}

// New creates a scanner with the given options
func New(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// ResolveRoot canonicalizes a root argument into a Directory.
// A path that does not exist or is not a directory yields a
// *models.InvalidRootError.
func ResolveRoot(arg string) (models.Directory, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return models.Directory{}, &models.InvalidRootError{Path: arg, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return models.Directory{}, &models.InvalidRootError{Path: arg, Err: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return models.Directory{}, &models.InvalidRootError{Path: arg, Err: err}
	}
	if !info.IsDir() {
		return models.Directory{}, &models.InvalidRootError{Path: arg, Err: errors.New("not a directory")}
	}

	return models.Directory{Path: resolved, Arg: arg}, nil
}

// Scan walks the directory tree and returns its file entries in
// lexicographic path order, which keeps runs reproducible.
func (s *Scanner) Scan(ctx context.Context, dir models.Directory) ([]models.FileEntry, error) {
	var entries []models.FileEntry

	err := filepath.WalkDir(dir.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir.Path {
				return err
			}
			s.warn(path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == dir.Path {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if len(s.opts.Exclude) > 0 {
			rel, relErr := filepath.Rel(dir.Path, path)
			if relErr == nil && Excluded(rel, s.opts.Exclude) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		switch {
		case d.Type().IsRegular():
		case d.Type()&fs.ModeSymlink != 0:
			if !s.opts.FollowSymlinks {
				return nil
			}
			// Only symlinks to regular files count; a symlink to a
			// directory stays unfollowed to avoid cycles
			info, statErr := os.Stat(path)
			if statErr != nil {
				s.warn(path, statErr)
				return nil
			}
			if !info.Mode().IsRegular() {
				return nil
			}
		default:
			return nil
		}

		entries = append(entries, models.FileEntry{
			Dir:  dir,
			Path: path,
			Name: name,
		})
		return nil
	})

	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &models.InvalidRootError{Path: dir.Arg, Err: err}
	}

	return entries, nil
}

func (s *Scanner) warn(path string, err error) {
	if s.opts.OnWarning != nil {
		s.opts.OnWarning(path, err)
	}
}
