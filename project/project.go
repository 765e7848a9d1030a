package project

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/pymodel/scan"
	"gopkg.in/yaml.v3"
)

// KeyValue is one entry of a configuration section.
type KeyValue struct {
	Key   string
	Value string
}

// SectionStore is the abstract configuration store a project reads its
// refactor sections from. The storage format behind it is not this
// core's concern.
type SectionStore interface {
	HasSection(name string) bool
	Items(name string) []KeyValue
}

// Context carries the execution dependencies a project is constructed
// with: the configuration store and a local working-directory path for
// project-scoped artifacts.
type Context struct {
	Cfg       SectionStore
	LocalPath string
}

// Option configures a project.
type Option func(*Project)

// WithLogger overrides the default structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		p.logger = logger
	}
}

// Project is the aggregate root: it owns every discovered code unit,
// resolves load-time overlaps, exposes qualname lookup and hosts the
// refactor configuration surface.
type Project struct {
	ctx *Context
	Src string

	scripts    []*Script
	modules    []*Module
	packages   []*Package
	namespaces []*Namespace

	// Packages declared in the "@section" form; their expansion is a
	// separate resolution pass outside this core.
	deferred []string

	rftOptions cell[map[string]string]
	rftFilters cell[map[string]string]
	rftRulers  cell[map[string]string]

	rmodules map[string]*Module
	builtins map[string]bool

	// Diagnostic sinks fed by the external analyzer; append-only,
	// deduplicated, never cleared.
	UnknownVars  []string
	UnknownAttrs map[string][]string
	UnknownCalls []string
	UnknownArgs  []string

	logger *slog.Logger
}

// New creates an empty project bound to ctx. Load populates it.
func New(ctx *Context, opts ...Option) *Project {
	p := &Project{
		ctx:          ctx,
		UnknownAttrs: map[string][]string{},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AbsPath returns the absolute source root used to resolve relative unit
// paths.
func (p *Project) AbsPath() string {
	abs, err := filepath.Abs(p.Src)
	if err != nil {
		return p.Src
	}
	return abs
}

// QualName of the project root is empty; unit qualnames never include it.
func (p *Project) QualName() string {
	return ""
}

// Project returns the receiver; the project terminates the parent chain.
func (p *Project) Project() *Project {
	return p
}

// Scripts returns the project entry points. A project may have many;
// scripts cannot be imported by other components.
func (p *Project) Scripts() []*Script {
	return p.scripts
}

// Modules returns the top-level modules.
func (p *Project) Modules() []*Module {
	return p.modules
}

// Packages returns the top-level packages only.
func (p *Project) Packages() []*Package {
	return p.packages
}

// Namespaces returns the top-level namespaces only.
func (p *Project) Namespaces() []*Namespace {
	return p.namespaces
}

// DeferredPackages returns the unexpanded "@section" package entries
// recorded during Load.
func (p *Project) DeferredPackages() []string {
	return p.deferred
}

// RelSrc re-expresses path relative to the project source root.
func (p *Project) RelSrc(path string) string {
	rel, err := filepath.Rel(p.Src, path)
	if err != nil {
		return path
	}
	return rel
}

// Load populates the project from an init record. It is called exactly
// once per instance. The required "src" field is fatal when absent; an
// unmatched pattern simply contributes zero paths.
func (p *Project) Load(data map[string]string) error {
	src, ok := data["src"]
	if !ok {
		return &MissingFieldError{Field: "src"}
	}

	if p.ctx != nil && p.ctx.LocalPath != "" {
		workdir := filepath.Join(p.ctx.LocalPath, "project")
		if err := os.MkdirAll(workdir, 0o755); err != nil {
			return fmt.Errorf("failed to create project workdir: %w", err)
		}
	}

	p.Src = src
	name := data["name"]
	excludes := append(vlist(data["excludes"]), scan.GlobalExcludes...)

	scripts := p.searchAll(src, vlist(data["scripts"]), excludes)
	for _, path := range scripts {
		p.scripts = append(p.scripts, NewScript(p.RelSrc(path), "", p))
	}

	modules := p.searchAll(src, vlist(data["modules"]), excludes)

	packages := vlist(data["packages"])
	switch {
	case len(packages) > 0:
		for _, item := range packages {
			p.loadPackageEntry(item, src)
		}
	case len(modules) == 0 && len(scripts) == 0:
		if err := p.loadDefault(src, name, excludes, &modules); err != nil {
			return err
		}
	}

	if len(scripts) > 0 && len(modules) > 0 {
		claimed := make(map[string]bool, len(scripts))
		for _, path := range scripts {
			claimed[path] = true
		}
		kept := modules[:0]
		for _, path := range modules {
			if claimed[path] {
				// Scripts take precedence over modules for the same path.
				p.logger.Debug("duplicated", "path", p.RelSrc(path))
				continue
			}
			kept = append(kept, path)
		}
		modules = kept
	}
	for _, path := range modules {
		p.modules = append(p.modules, NewModule(p.RelSrc(path), "", p))
	}

	p.logger.Info("load scripts", "count", len(p.scripts))
	p.logger.Info("load modules", "count", len(p.modules))
	p.logger.Info("load packages", "count", len(p.packages))
	return nil
}

// LoadFile reads a YAML init record from path and loads the project from
// it.
func (p *Project) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	record := map[string]string{}
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse init record %s: %w", path, err)
	}
	return p.Load(record)
}

func (p *Project) searchAll(src string, patterns, excludes []string) []string {
	var result []string
	for _, pattern := range patterns {
		items, err := scan.SearchItem(src, pattern, excludes, false)
		if err != nil {
			p.logger.Warn("skip pattern", "pattern", pattern, "error", err)
			continue
		}
		result = append(result, items...)
	}
	return result
}

// loadPackageEntry handles the three package entry forms: path,
// path@name and @section.
func (p *Project) loadPackageEntry(item, src string) {
	switch i := strings.Index(item, "@"); {
	case i == 0:
		p.logger.Info("package at section", "section", item)
		p.deferred = append(p.deferred, item)
	case i < 0:
		p.addPackage(item, filepath.Base(item), src)
	default:
		p.addPackage(item[:i], item[i+1:], src)
	}
}

func (p *Project) addPackage(path, name, src string) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(src, path)
	}
	p.packages = append(p.packages, NewPackage(path, name, p))
}

// loadDefault applies when no packages are declared and no script or
// module pattern matched: src itself becomes a package when it holds an
// __init__ file, otherwise one non-recursive scan promotes files to
// modules and subdirectories to packages.
func (p *Project) loadDefault(src, name string, excludes []string, modules *[]string) error {
	pkginit := filepath.Join(src, "__init__.py")
	if _, err := os.Stat(pkginit); err == nil {
		pkgname := name
		if pkgname == "" {
			pkgname = filepath.Base(src)
		}
		p.packages = append(p.packages, NewPackage(src, pkgname, p))
		return nil
	}
	files, dirs, err := scan.ScanPath(src, nil, excludes)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", src, err)
	}
	for _, file := range files {
		*modules = append(*modules, filepath.Join(src, file))
	}
	for _, dir := range dirs {
		p.packages = append(p.packages, NewPackage(dir, "", p))
	}
	return nil
}

// WalkModules visits every module in the project: top-level modules
// first, then packages and namespaces depth-first.
func (p *Project) WalkModules(fn func(*Module) error) error {
	for _, m := range p.modules {
		if err := fn(m); err != nil {
			return err
		}
	}
	for _, pkg := range p.packages {
		if err := pkg.WalkModules(fn); err != nil {
			return err
		}
	}
	for _, ns := range p.namespaces {
		if err := ns.WalkModules(fn); err != nil {
			return err
		}
	}
	return nil
}

// GetModule resolves a unit by its unique qualname. The reverse index is
// built once on first use; unknown names return nil, not an error. The
// index does not track tree mutation after it is built; run Load to
// completion before the first lookup or call ResetIndex.
func (p *Project) GetModule(qualname string) *Module {
	if p.rmodules == nil {
		p.rmodules = map[string]*Module{}
		err := p.WalkModules(func(m *Module) error {
			p.rmodules[m.QualName()] = m
			return nil
		})
		if err != nil {
			p.logger.Warn("qualname index incomplete", "error", err)
		}
	}
	return p.rmodules[qualname]
}

// ResetIndex discards the qualname index so the next GetModule rebuilds
// it over the current tree.
func (p *Project) ResetIndex() {
	p.rmodules = nil
}

// vlist splits a whitespace-separated pattern list, decoding the %20%
// placeholder for embedded spaces.
func vlist(value string) []string {
	var out []string
	for _, field := range strings.Fields(value) {
		out = append(out, strings.ReplaceAll(field, "%20%", " "))
	}
	return out
}
