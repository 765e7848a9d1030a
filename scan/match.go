// Package scan provides pattern matching and filesystem discovery for
// project loading: include/exclude filtering of directory entries and
// glob-based pattern search rooted at a base path.
package scan

import (
	"github.com/bmatcuk/doublestar/v4"
)

var (
	// GlobalIncludes is the default file filter applied when no explicit
	// includes are given.
	GlobalIncludes = []string{"*.py", "*.pyw"}

	// GlobalExcludes is applied to every package scan regardless of user
	// configuration: hidden dot entries and bytecode caches.
	GlobalExcludes = []string{".*", "__pycache__"}
)

// Match reports whether name matches any of the shell-style patterns
// (`*`, `?`, character classes). Evaluation stops at the first match;
// an empty pattern set never matches.
func Match(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
