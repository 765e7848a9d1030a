package project_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_AsDot(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.py"), "x = 1\n")
	writeFile(t, filepath.Join(src, "pkg", "__init__.py"), "")
	writeFile(t, filepath.Join(src, "pkg", "util.py"), "y = 2\n")

	p := newProject(t, nil)
	require.NoError(t, p.Load(map[string]string{"src": src}))

	doc, err := p.AsDot()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "graph {"))
	assert.True(t, strings.HasSuffix(doc, "}"))
	assert.Contains(t, doc, "subgraph cluster_0 {")
	assert.Contains(t, doc, `label="Project Structure";`)
	assert.Contains(t, doc, `label="pkg";`)
	assert.Contains(t, doc, "a")
	assert.Contains(t, doc, "util")

	// Cluster ids are stable across emissions.
	again, err := p.AsDot()
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}
