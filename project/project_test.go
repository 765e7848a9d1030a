package project_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/pymodel/config"
	"github.com/viant/pymodel/project"
)

// testLogger routes structured logs into t.Log so they only surface on
// failure or with -v.
func testLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newProject(t *testing.T, sections map[string]map[string]string) *project.Project {
	t.Helper()
	ctx := &project.Context{
		Cfg:       config.NewFromMap(sections),
		LocalPath: t.TempDir(),
	}
	return project.New(ctx, project.WithLogger(testLogger(t)))
}

func TestProject_LoadMissingSrc(t *testing.T) {
	p := newProject(t, nil)
	err := p.Load(map[string]string{"name": "demo"})
	require.Error(t, err)
	var missing *project.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "src", missing.Field)
}

func TestProject_LoadCreatesWorkdir(t *testing.T) {
	local := t.TempDir()
	p := project.New(
		&project.Context{LocalPath: local},
		project.WithLogger(testLogger(t)),
	)
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.py"), "x = 1\n")
	require.NoError(t, p.Load(map[string]string{"src": src}))

	info, err := os.Stat(filepath.Join(local, "project"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestProject_LoadDefaultScan(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.py"), "x = 1\n")
	writeFile(t, filepath.Join(src, "b.py"), "y = 2\n")
	writeFile(t, filepath.Join(src, "pkg", "__init__.py"), "")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{"src": src}))

	modules := p.Modules()
	require.Len(t, modules, 2)
	assert.Equal(t, "a", modules[0].Name())
	assert.Equal(t, "b", modules[1].Name())

	packages := p.Packages()
	require.Len(t, packages, 1)
	assert.Equal(t, "pkg", packages[0].Name())
	assert.Equal(t, "pkg", packages[0].QualName())

	// The package's own __init__ collapses onto the package qualname.
	children, err := packages[0].Modules()
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "", children[0].Name())
	assert.Equal(t, "pkg", children[0].QualName())
}

func TestProject_LoadSrcAsPackage(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "__init__.py"), "")
	writeFile(t, filepath.Join(src, "core.py"), "x = 1\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{"src": src, "name": "demo"}))

	assert.Empty(t, p.Modules())
	packages := p.Packages()
	require.Len(t, packages, 1)
	assert.Equal(t, "demo", packages[0].Name())
	assert.Equal(t, src, packages[0].Path())
}

func TestProject_LoadScriptsTakePrecedence(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "main.py"), "print('hi')\n")
	writeFile(t, filepath.Join(src, "util.py"), "x = 1\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{
		"src":     src,
		"scripts": "main.py",
		"modules": "*.py",
	}))

	scripts := p.Scripts()
	require.Len(t, scripts, 1)
	assert.Equal(t, "main", scripts[0].Name())

	modules := p.Modules()
	require.Len(t, modules, 1)
	assert.Equal(t, "util", modules[0].Name())
}

func TestProject_LoadPackageForms(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "lib", "__init__.py"), "")
	writeFile(t, filepath.Join(src, "plain", "__init__.py"), "")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{
		"src":      src,
		"packages": "lib@core plain @extras",
	}))

	packages := p.Packages()
	require.Len(t, packages, 2)
	assert.Equal(t, "core", packages[0].Name())
	assert.Equal(t, filepath.Join(src, "lib"), packages[0].Path())
	assert.Equal(t, "plain", packages[1].Name())

	assert.Equal(t, []string{"@extras"}, p.DeferredPackages())
}

func TestProject_LoadSpacePlaceholder(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "my tool.py"), "x = 1\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{
		"src":     src,
		"modules": "my%20%tool.py",
	}))

	modules := p.Modules()
	require.Len(t, modules, 1)
	assert.Equal(t, "my tool", modules[0].Name())
}

func TestProject_GetModule(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.py"), "x = 1\n")
	writeFile(t, filepath.Join(src, "pkg", "__init__.py"), "")
	writeFile(t, filepath.Join(src, "pkg", "util.py"), "y = 2\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{"src": src}))

	first := p.GetModule("pkg.util")
	require.NotNil(t, first)
	assert.Same(t, first, p.GetModule("pkg.util"))
	assert.Nil(t, p.GetModule("never.present"))

	a := p.GetModule("a")
	require.NotNil(t, a)
	assert.Equal(t, "a", a.QualName())
}

func TestProject_RelSrc(t *testing.T) {
	src := t.TempDir()
	p := newProject(t, nil)
	writeFile(t, filepath.Join(src, "a.py"), "x = 1\n")
	require.NoError(t, p.Load(map[string]string{"src": src}))

	assert.Equal(t, filepath.Join("pkg", "m.py"), p.RelSrc(filepath.Join(src, "pkg", "m.py")))
}
