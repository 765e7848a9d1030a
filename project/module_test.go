package project_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_ParseFile(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "mod.py"), "value = 42\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{"src": src}))
	m := p.GetModule("mod")
	require.NotNil(t, m)

	assert.Nil(t, m.Tree())
	require.NoError(t, m.ParseFile(false))
	first := m.Tree()
	require.NotNil(t, first)

	// Repeat parse is a no-op; force replaces the cached tree.
	require.NoError(t, m.ParseFile(false))
	assert.Same(t, first, m.Tree())
	require.NoError(t, m.ParseFile(true))
	assert.NotSame(t, first, m.Tree())
}

func TestModule_CompileFile(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "mod.py"), "value = 42\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{"src": src}))
	m := p.GetModule("mod")
	require.NotNil(t, m)

	// Compile ensures a parsed tree first.
	require.NoError(t, m.CompileFile(false))
	require.NotNil(t, m.Tree())
	code := m.Code()
	require.NotNil(t, code)
	assert.Equal(t, m.AbsPath(), code.Path)

	require.NoError(t, m.CompileFile(false))
	assert.Same(t, code, m.Code())
}

func TestModule_ParseFailureIsScoped(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "good.py"), "x = 1\n")
	writeFile(t, filepath.Join(src, "bad.py"), "def broken(:\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{"src": src}))

	bad := p.GetModule("bad")
	require.NotNil(t, bad)
	firstErr := bad.ParseFile(false)
	require.Error(t, firstErr)
	assert.Nil(t, bad.Tree())

	// The failure is remembered, not recomputed.
	assert.Equal(t, firstErr, bad.ParseFile(false))

	// Sibling units are unaffected.
	good := p.GetModule("good")
	require.NotNil(t, good)
	assert.NoError(t, good.ParseFile(false))
}
