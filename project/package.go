package project

import (
	"github.com/viant/pymodel/scan"
)

// Package represents a directory of modules with an __init__ module. Its
// children are enumerated by exactly one filesystem scan on first access.
type Package struct {
	Module

	loaded   bool
	modules  []*Module
	packages []*Package
}

// NewPackage creates a package rooted at path, parented to owner.
func NewPackage(path, name string, parent Owner) *Package {
	return &Package{Module: *NewModule(path, name, parent)}
}

// Load scans the package directory once, building one module per matched
// file and one sub-package per directory, each parented to this package.
// The fixed global excludes apply regardless of user configuration. A
// repeat call is a no-op.
func (p *Package) Load() error {
	if p.loaded {
		return nil
	}
	files, dirs, err := scan.ScanPath(p.AbsPath(), nil, scan.GlobalExcludes)
	if err != nil {
		return err
	}
	for _, name := range files {
		p.modules = append(p.modules, NewModule(name, "", p))
	}
	for _, name := range dirs {
		p.packages = append(p.packages, NewPackage(name, "", p))
	}
	p.loaded = true
	return nil
}

// Modules returns the package's immediate modules, loading on first
// access. Repeat calls return the same objects.
func (p *Package) Modules() ([]*Module, error) {
	if err := p.Load(); err != nil {
		return nil, err
	}
	return p.modules, nil
}

// SubPackages returns the package's immediate sub-packages with the same
// lazy-load contract as Modules.
func (p *Package) SubPackages() ([]*Package, error) {
	if err := p.Load(); err != nil {
		return nil, err
	}
	return p.packages, nil
}

// WalkModules visits every module transitively owned by this package,
// depth-first pre-order, triggering loads as needed.
func (p *Package) WalkModules(fn func(*Module) error) error {
	if err := p.Load(); err != nil {
		return err
	}
	for _, m := range p.modules {
		if err := fn(m); err != nil {
			return err
		}
	}
	for _, sub := range p.packages {
		if err := sub.WalkModules(fn); err != nil {
			return err
		}
	}
	return nil
}
