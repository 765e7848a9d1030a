// Package repository detects Python project roots by marker files and
// derives default project init records from them.
package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
)

// Detector identifies project root folders and provides project-related
// information.
type Detector struct {
	markers []string
}

// New creates a detector with the default Python project markers.
func New() *Detector {
	return &Detector{
		markers: []string{
			"pyproject.toml",
			"setup.py",
			"setup.cfg",
			"requirements.txt",
			"Pipfile",
			".git",
		},
	}
}

// Project describes a detected project root.
type Project struct {
	Name         string
	Type         string
	RootPath     string
	RelativePath string
}

// DetectProject identifies the project root for the given path and
// returns project info. Without a marker the path itself is the root.
func (d *Detector) DetectProject(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)

	info := &Project{
		Type:     "unknown",
		RootPath: absPath,
	}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)

	info.Name = extractProjectName(info.RootPath)
	return info, nil
}

// InitData builds a default init record for project loading rooted at
// path: the detected root as src and the extracted name when available.
func (d *Detector) InitData(path string) (map[string]string, error) {
	info, err := d.DetectProject(path)
	if err != nil {
		return nil, err
	}
	data := map[string]string{"src": info.RootPath}
	if info.Name != "" {
		data["name"] = info.Name
	}
	return data, nil
}

// findProjectRoot searches up from the current directory for project
// markers.
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			markerPath := filepath.Join(dir, marker)
			if _, err := os.Stat(markerPath); err == nil {
				return dir, determineProjectType(marker)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root with no match.
			break
		}
		dir = parent
	}
	return "", ""
}

var nameRegex = regexp.MustCompile(`(?m)^\s*name\s*=\s*["']([^"']+)["']`)

// extractProjectName reads the project name from pyproject.toml, falling
// back to setup.py, then to the root directory name.
func extractProjectName(rootPath string) string {
	for _, candidate := range []string{"pyproject.toml", "setup.py"} {
		data := readSource(filepath.Join(rootPath, candidate))
		if len(data) == 0 {
			continue
		}
		if matches := nameRegex.FindSubmatch(data); len(matches) >= 2 {
			return string(matches[1])
		}
	}
	return filepath.Base(rootPath)
}

func readSource(path string) []byte {
	fs := afs.New()
	if content, _ := fs.DownloadWithURL(context.Background(), path); len(content) > 0 {
		return content
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return data
}

// determineProjectType identifies the type of project based on the
// marker file.
func determineProjectType(marker string) string {
	switch marker {
	case "pyproject.toml", "setup.py", "setup.cfg", "requirements.txt", "Pipfile":
		return "python"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
