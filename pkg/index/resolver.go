package index

import (
	"sort"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

// Resolve derives the per-directory unique sets from a merged index.
//
// The policy is two-stage: first every path belonging to a key seen in two
// or more directories is marked non-unique, then a file counts as unique
// only when its path is unmarked and its key's bucket is confined to a
// single directory. For a merged immutable index the second condition
// restates the first, so both stages collapse into one pass here; the
// double lookup is kept explicit because uniqueness is defined by the
// bucket, not by the marking.
//
// Within each set filenames are in ascending lexicographic order, paths
// breaking ties. A filename appears in at most one set in name mode; a
// path appears in at most one set in content mode.
func Resolve(ix *Index, dirs []models.Directory) map[string]models.UniqueSet {
	nonUnique := make(map[string]struct{})
	for _, bucket := range ix.buckets {
		if bucket.Spans() < 2 {
			continue
		}
		for _, occ := range bucket.Occurrences {
			nonUnique[occ.Path] = struct{}{}
		}
	}

	sets := make(map[string]models.UniqueSet, len(dirs))
	for _, d := range dirs {
		sets[d.Path] = nil
	}

	for key, bucket := range ix.buckets {
		for _, occ := range bucket.Occurrences {
			if _, marked := nonUnique[occ.Path]; marked {
				continue
			}
			if found := ix.Lookup(key); found == nil || found.Spans() != 1 {
				continue
			}
			sets[occ.Dir] = append(sets[occ.Dir], models.UniqueFile{
				Name: occ.Name,
				Path: occ.Path,
			})
		}
	}

	for dir, set := range sets {
		sort.Slice(set, func(i, j int) bool {
			if set[i].Name != set[j].Name {
				return set[i].Name < set[j].Name
			}
			return set[i].Path < set[j].Path
		})
		sets[dir] = set
	}

	return sets
}
