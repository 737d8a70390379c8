package scan

import (
	"testing"
)

func TestExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{"NoPatterns", "file.txt", nil, false},
		{"BasenameGlobMatch", "file.tmp", []string{"*.tmp"}, true},
		{"BasenameGlobNested", "sub/dir/file.tmp", []string{"*.tmp"}, true},
		{"BasenameGlobNoMatch", "file.txt", []string{"*.tmp"}, false},
		{"DirPatternTop", "build/out.bin", []string{"build/"}, true},
		{"DirPatternItself", "build", []string{"build/"}, true},
		{"DirPatternNested", "src/build/out.bin", []string{"build/"}, true},
		{"DirPatternNoMatch", "rebuild/out.bin", []string{"build/"}, false},
		{"PathGlob", "docs/readme.md", []string{"docs/*.md"}, true},
		{"PathGlobWrongDepth", "docs/sub/readme.md", []string{"docs/*.md"}, false},
		{"EmptyPatternIgnored", "file.txt", []string{""}, false},
		{"SecondPatternMatches", "notes.log", []string{"*.tmp", "*.log"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excluded(tt.path, tt.patterns); got != tt.want {
				t.Errorf("Excluded(%q, %v) = %t, want %t", tt.path, tt.patterns, got, tt.want)
			}
		})
	}
}
