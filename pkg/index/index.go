// Package index builds the identity mapping that drives uniqueness
// classification: identity key (filename or content hash) to the set of
// directories and paths where that key was seen.
package index

import (
	"github.com/sdejongh/uniqnorris/pkg/models"
)

// Occurrence records one file that mapped to an identity key
type Occurrence struct {
	// Path is the absolute file path
	Path string
	// Dir is the canonical path of the comparison root
	Dir string
	// Name is the base filename
	Name string
}

// Bucket holds every occurrence of a single identity key
type Bucket struct {
	Occurrences []Occurrence
	dirs        map[string]struct{}
}

// Spans returns the number of distinct directories the key was seen in
func (b *Bucket) Spans() int {
	return len(b.dirs)
}

// Partial is the keyed file list of a single directory. Each scan owns
// its partial exclusively; sharing only happens at the merge, so parallel
// per-directory builds need no locking.
type Partial struct {
	Dir     models.Directory
	keys    []string
	entries []models.FileEntry
}

// NewPartial creates an empty partial index for one directory
func NewPartial(dir models.Directory) *Partial {
	return &Partial{Dir: dir}
}

// Add records a keyed file entry.
// Files whose key could not be computed are simply never added, which
// keeps them out of both the unique and the duplicate side.
func (p *Partial) Add(key string, entry models.FileEntry) {
	p.keys = append(p.keys, key)
	p.entries = append(p.entries, entry)
}

// Len returns the number of keyed entries
func (p *Partial) Len() int {
	return len(p.keys)
}

// Index is the merged, immutable identity mapping of a run
type Index struct {
	mode    models.CompareMode
	buckets map[string]*Bucket
}

// Merge folds per-directory partials into a single index
func Merge(mode models.CompareMode, partials []*Partial) *Index {
	ix := &Index{
		mode:    mode,
		buckets: make(map[string]*Bucket),
	}

	for _, p := range partials {
		for i, key := range p.keys {
			entry := p.entries[i]

			bucket, ok := ix.buckets[key]
			if !ok {
				bucket = &Bucket{dirs: make(map[string]struct{})}
				ix.buckets[key] = bucket
			}

			bucket.Occurrences = append(bucket.Occurrences, Occurrence{
				Path: entry.Path,
				Dir:  entry.Dir.Path,
				Name: entry.Name,
			})
			bucket.dirs[entry.Dir.Path] = struct{}{}
		}
	}

	return ix
}

// Mode returns the comparison mode the index was built for
func (ix *Index) Mode() models.CompareMode {
	return ix.mode
}

// Lookup returns the bucket for a key, or nil if the key was never seen
func (ix *Index) Lookup(key string) *Bucket {
	return ix.buckets[key]
}

// Len returns the number of distinct identity keys
func (ix *Index) Len() int {
	return len(ix.buckets)
}
