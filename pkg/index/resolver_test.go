package index

import (
	"sort"
	"testing"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

func TestResolveByName(t *testing.T) {
	dirA := dir("/a")
	dirB := dir("/b")
	dirs := []models.Directory{dirA, dirB}

	t.Run("SpecScenario", func(t *testing.T) {
		// dirA={a.txt,b.txt}, dirB={a.txt,c.txt} -> A unique b.txt, B unique c.txt
		pa := NewPartial(dirA)
		pa.Add("a.txt", entry(dirA, "/a/a.txt", "a.txt"))
		pa.Add("b.txt", entry(dirA, "/a/b.txt", "b.txt"))

		pb := NewPartial(dirB)
		pb.Add("a.txt", entry(dirB, "/b/a.txt", "a.txt"))
		pb.Add("c.txt", entry(dirB, "/b/c.txt", "c.txt"))

		sets := Resolve(Merge(models.CompareByName, []*Partial{pa, pb}), dirs)

		if got := sets["/a"].Names(); len(got) != 1 || got[0] != "b.txt" {
			t.Errorf("dirA unique = %v, want [b.txt]", got)
		}
		if got := sets["/b"].Names(); len(got) != 1 || got[0] != "c.txt" {
			t.Errorf("dirB unique = %v, want [c.txt]", got)
		}
	})

	t.Run("SharedNameUniqueToNone", func(t *testing.T) {
		pa := NewPartial(dirA)
		pa.Add("same.txt", entry(dirA, "/a/same.txt", "same.txt"))
		pb := NewPartial(dirB)
		pb.Add("same.txt", entry(dirB, "/b/same.txt", "same.txt"))

		sets := Resolve(Merge(models.CompareByName, []*Partial{pa, pb}), dirs)

		if len(sets["/a"])+len(sets["/b"]) != 0 {
			t.Errorf("shared filename reported unique: a=%v b=%v", sets["/a"], sets["/b"])
		}
	})

	t.Run("FilenameInAtMostOneSet", func(t *testing.T) {
		dirC := dir("/c")
		all := []models.Directory{dirA, dirB, dirC}

		pa := NewPartial(dirA)
		pa.Add("x", entry(dirA, "/a/x", "x"))
		pb := NewPartial(dirB)
		pb.Add("y", entry(dirB, "/b/y", "y"))
		pc := NewPartial(dirC)
		pc.Add("x", entry(dirC, "/c/x", "x"))

		sets := Resolve(Merge(models.CompareByName, []*Partial{pa, pb, pc}), all)

		seen := make(map[string]int)
		for _, d := range all {
			for _, f := range sets[d.Path] {
				seen[f.Name]++
			}
		}
		if seen["x"] != 0 {
			t.Errorf("x appears in %d sets, want 0", seen["x"])
		}
		if seen["y"] != 1 {
			t.Errorf("y appears in %d sets, want 1", seen["y"])
		}
	})

	t.Run("SortedAscending", func(t *testing.T) {
		pa := NewPartial(dirA)
		for _, name := range []string{"zebra.txt", "alpha.txt", "mango.txt"} {
			pa.Add(name, entry(dirA, "/a/"+name, name))
		}

		sets := Resolve(Merge(models.CompareByName, []*Partial{pa, NewPartial(dirB)}), dirs)

		names := sets["/a"].Names()
		if !sort.StringsAreSorted(names) {
			t.Errorf("unique set not sorted: %v", names)
		}
	})
}

func TestResolveByContent(t *testing.T) {
	dirA := dir("/a")
	dirB := dir("/b")
	dirs := []models.Directory{dirA, dirB}

	t.Run("RenamedDuplicateExcludedFromBoth", func(t *testing.T) {
		// Same content under different names in different directories:
		// neither file is unique
		pa := NewPartial(dirA)
		pa.Add("hashP", entry(dirA, "/a/x.txt", "x.txt"))
		pb := NewPartial(dirB)
		pb.Add("hashP", entry(dirB, "/b/y.txt", "y.txt"))

		sets := Resolve(Merge(models.CompareByContent, []*Partial{pa, pb}), dirs)

		if len(sets["/a"])+len(sets["/b"]) != 0 {
			t.Errorf("renamed duplicates reported unique: a=%v b=%v", sets["/a"], sets["/b"])
		}
	})

	t.Run("UniqueContentRegardlessOfName", func(t *testing.T) {
		pa := NewPartial(dirA)
		pa.Add("hashX", entry(dirA, "/a/shared-name.txt", "shared-name.txt"))
		pb := NewPartial(dirB)
		pb.Add("hashY", entry(dirB, "/b/shared-name.txt", "shared-name.txt"))

		sets := Resolve(Merge(models.CompareByContent, []*Partial{pa, pb}), dirs)

		// Identical names but different content: both unique in content mode
		if got := sets["/a"].Names(); len(got) != 1 || got[0] != "shared-name.txt" {
			t.Errorf("dirA unique = %v, want [shared-name.txt]", got)
		}
		if got := sets["/b"].Names(); len(got) != 1 {
			t.Errorf("dirB unique = %v, want one entry", got)
		}
	})

	t.Run("SpecScenarioContentMode", func(t *testing.T) {
		// dirA={a.txt:X, b.txt:Y}, dirB={a.txt:X, c.txt:Z}
		pa := NewPartial(dirA)
		pa.Add("hashX", entry(dirA, "/a/a.txt", "a.txt"))
		pa.Add("hashY", entry(dirA, "/a/b.txt", "b.txt"))
		pb := NewPartial(dirB)
		pb.Add("hashX", entry(dirB, "/b/a.txt", "a.txt"))
		pb.Add("hashZ", entry(dirB, "/b/c.txt", "c.txt"))

		sets := Resolve(Merge(models.CompareByContent, []*Partial{pa, pb}), dirs)

		if got := sets["/a"].Names(); len(got) != 1 || got[0] != "b.txt" {
			t.Errorf("dirA unique = %v, want [b.txt]", got)
		}
		if got := sets["/b"].Names(); len(got) != 1 || got[0] != "c.txt" {
			t.Errorf("dirB unique = %v, want [c.txt]", got)
		}
	})

	t.Run("DuplicateWithinSingleDirectoryStaysUnique", func(t *testing.T) {
		// Two copies inside the same directory span one dir, so both
		// count as unique to it
		pa := NewPartial(dirA)
		pa.Add("hashQ", entry(dirA, "/a/one.txt", "one.txt"))
		pa.Add("hashQ", entry(dirA, "/a/two.txt", "two.txt"))

		sets := Resolve(Merge(models.CompareByContent, []*Partial{pa, NewPartial(dirB)}), dirs)

		if got := sets["/a"].Names(); len(got) != 2 {
			t.Errorf("dirA unique = %v, want both copies", got)
		}
	})

	t.Run("PathInAtMostOneSet", func(t *testing.T) {
		pa := NewPartial(dirA)
		pa.Add("h1", entry(dirA, "/a/f1", "f1"))
		pa.Add("h2", entry(dirA, "/a/f2", "f2"))
		pb := NewPartial(dirB)
		pb.Add("h1", entry(dirB, "/b/g1", "g1"))
		pb.Add("h3", entry(dirB, "/b/g2", "g2"))

		sets := Resolve(Merge(models.CompareByContent, []*Partial{pa, pb}), dirs)

		paths := make(map[string]int)
		for _, d := range dirs {
			for _, f := range sets[d.Path] {
				paths[f.Path]++
			}
		}
		for path, count := range paths {
			if count > 1 {
				t.Errorf("path %s appears in %d sets", path, count)
			}
		}
	})

	t.Run("EmptyDirectoryHasEmptySet", func(t *testing.T) {
		sets := Resolve(Merge(models.CompareByContent, []*Partial{NewPartial(dirA), NewPartial(dirB)}), dirs)
		if len(sets) != 2 {
			t.Fatalf("Resolve() returned %d sets, want one per directory", len(sets))
		}
		if len(sets["/a"]) != 0 || len(sets["/b"]) != 0 {
			t.Error("empty directories should have empty unique sets")
		}
	})
}
