package scan

import (
	"path/filepath"
	"strings"
)

// Excluded reports whether a relative path matches any of the given
// patterns. Patterns support:
//   - basename globs: *.tmp, *.log
//   - directory patterns: build/, node_modules/
//   - path globs containing a separator: docs/*.md
func Excluded(relativePath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	path := filepath.ToSlash(relativePath)
	base := filepath.Base(relativePath)

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		pattern = filepath.ToSlash(pattern)

		// Directory pattern: matches the directory itself and anything below it
		if strings.HasSuffix(pattern, "/") {
			dir := strings.TrimSuffix(pattern, "/")
			if path == dir ||
				strings.HasPrefix(path, dir+"/") ||
				strings.Contains(path, "/"+dir+"/") {
				return true
			}
			continue
		}

		if strings.Contains(pattern, "/") {
			if ok, _ := filepath.Match(pattern, path); ok {
				return true
			}
			continue
		}

		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}

	return false
}
