package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanPath lists the immediate children of path, partitioning them into
// matched file names and directory names. Symbolic links are not followed.
// Excludes filter both files and directories; includes (GlobalIncludes when
// nil) filter files only. Order is directory-enumeration order.
func ScanPath(path string, includes, excludes []string) (files, dirs []string, err error) {
	if len(includes) == 0 {
		includes = GlobalIncludes
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range entries {
		name := entry.Name()
		if Match(name, excludes) {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, name)
		} else if entry.Type().IsRegular() && Match(name, includes) {
			files = append(files, name)
		}
	}
	return files, dirs, nil
}

// SearchItem expands one glob pattern, absolute or relative to root, into
// normalized paths. The `**` wildcard is honored only when recursive is
// set. Entries whose base name matches an exclude pattern are dropped. An
// empty pattern yields no result; a pattern matching nothing is not an
// error.
func SearchItem(root, pattern string, excludes []string, recursive bool) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}

	// A trailing separator means the pattern targets directories; strip it
	// so exclude matching sees the directory name, not an empty segment.
	pattern = strings.TrimSuffix(pattern, string(os.PathSeparator))
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(root, pattern)
	}

	var matches []string
	var err error
	if recursive {
		matches, err = doublestar.FilepathGlob(pattern)
	} else {
		matches, err = filepath.Glob(pattern)
	}
	if err != nil {
		return nil, err
	}

	var result []string
	for _, item := range matches {
		name := filepath.Base(strings.TrimSuffix(item, string(os.PathSeparator)))
		if Match(name, excludes) {
			continue
		}
		result = append(result, filepath.Clean(item))
	}
	return result, nil
}
