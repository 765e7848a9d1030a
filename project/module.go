package project

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/viant/pymodel/pysrc"
)

// Module represents one importable source file in a project.
type Module struct {
	parent Owner
	path   string
	name   string // raw name; __init__ collapses in Name

	tree cell[*pysrc.Tree]
	code cell[*pysrc.Code]
}

// NewModule creates a module for path, parented to owner. When name is
// empty it derives from the file base name without extension.
func NewModule(path, name string, parent Owner) *Module {
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &Module{parent: parent, path: path, name: name}
}

// Name returns the user-facing identifier; the __init__ module maps to
// the empty string, since a package's own namespace takes the package
// name.
func (m *Module) Name() string {
	if m.name == "__init__" {
		return ""
	}
	return m.name
}

// Path returns the path as given, relative to the owner unless absolute.
func (m *Module) Path() string {
	return m.path
}

// Parent returns the owning package or project.
func (m *Module) Parent() Owner {
	return m.parent
}

// QualName joins ancestor names up to the project root. An empty own name
// contributes no separator or suffix: a package's qualname already
// represents its __init__ module.
func (m *Module) QualName() string {
	if m.parent == nil {
		return m.name
	}
	if _, ok := m.parent.(*Project); ok {
		return m.name
	}
	prefix := m.parent.QualName()
	if name := m.Name(); name != "" {
		return prefix + "." + name
	}
	return prefix
}

// Project walks the parent chain up to the owning project.
func (m *Module) Project() *Project {
	if p, ok := m.parent.(*Project); ok {
		return p
	}
	if m.parent == nil {
		return nil
	}
	return m.parent.Project()
}

// AbsPath resolves the module path against the nearest ancestor with an
// absolute path.
func (m *Module) AbsPath() string {
	if filepath.IsAbs(m.path) || m.parent == nil {
		return m.path
	}
	return filepath.Join(m.parent.AbsPath(), m.path)
}

// ParseFile parses the module source into a syntax tree, computing at
// most once unless force is set. Failures are scoped to this module and
// replayed on repeat access.
func (m *Module) ParseFile(force bool) error {
	_, err := m.tree.resolve(force, func() (*pysrc.Tree, error) {
		logger := m.logger()
		logger.Info("parse module", "qualname", m.QualName())
		tree, err := pysrc.Parse(m.AbsPath())
		if err != nil {
			return nil, err
		}
		logger.Info("parse module end", "qualname", m.QualName())
		return tree, nil
	})
	return err
}

// CompileFile ensures a parsed tree, then lowers it into a code object
// with the same caching and force semantics as ParseFile.
func (m *Module) CompileFile(force bool) error {
	_, err := m.code.resolve(force, func() (*pysrc.Code, error) {
		if err := m.ParseFile(force); err != nil {
			return nil, err
		}
		logger := m.logger()
		logger.Info("compile module", "qualname", m.QualName())
		code, err := pysrc.Compile(m.Tree())
		if err != nil {
			return nil, err
		}
		logger.Info("compile module end", "qualname", m.QualName())
		return code, nil
	})
	return err
}

// Tree returns the parsed syntax tree, nil before a successful ParseFile.
func (m *Module) Tree() *pysrc.Tree {
	return m.tree.value
}

// Code returns the compiled code object, nil before a successful
// CompileFile.
func (m *Module) Code() *pysrc.Code {
	return m.code.value
}

func (m *Module) logger() *slog.Logger {
	if p := m.Project(); p != nil {
		return p.logger
	}
	return slog.Default()
}

func (m *Module) dot() string {
	return m.Name()
}
