package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pymodel/repository"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetector_DetectProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), "[project]\nname = \"demo\"\n")
	writeFile(t, filepath.Join(root, "app", "main.py"), "print('hi')\n")

	detector := repository.New()
	info, err := detector.DetectProject(filepath.Join(root, "app", "main.py"))
	require.NoError(t, err)

	assert.Equal(t, root, info.RootPath)
	assert.Equal(t, "python", info.Type)
	assert.Equal(t, "demo", info.Name)
	assert.Equal(t, "app/main.py", info.RelativePath)
}

func TestDetector_NameFromSetup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "setup.py"), "from setuptools import setup\nsetup(\n    name=\"legacy\",\n)\n")

	detector := repository.New()
	info, err := detector.DetectProject(root)
	require.NoError(t, err)
	assert.Equal(t, "legacy", info.Name)
	assert.Equal(t, "python", info.Type)
}

func TestDetector_InitData(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), "[project]\nname = \"demo\"\n")

	detector := repository.New()
	data, err := detector.InitData(root)
	require.NoError(t, err)
	assert.Equal(t, root, data["src"])
	assert.Equal(t, "demo", data["name"])
}
