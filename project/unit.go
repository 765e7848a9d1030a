// Package project models the structure of a Python codebase: entry-point
// scripts, modules, packages and implicit namespace packages discovered
// from disk, owned by a Project aggregate that also carries the refactor
// configuration surface and diagnostic sinks consumed by the downstream
// rewrite engine.
package project

// Unit is the capability surface shared by Script, Module, Package and
// Namespace. No further implementers exist.
type Unit interface {
	// Name returns the user-facing identifier; the distinguished name
	// __init__ maps to the empty string.
	Name() string
	// QualName returns the dot-joined chain of ancestor names up to, not
	// including, the project root. Unique per project except for scripts.
	QualName() string
	// Project walks the parent chain up to the owning project.
	Project() *Project
}

// Owner is the parent side of the ownership chain: a Package or the
// Project itself. Children hold a non-owning back-reference only; the
// project owns the full tree.
type Owner interface {
	AbsPath() string
	QualName() string
	Project() *Project
}

// cell is an explicit compute-at-most-once state over three outcomes:
// uncomputed, computed(value) and failed(error). A failed cell keeps its
// error on repeat access; force recomputes.
type cell[T any] struct {
	value T
	err   error
	done  bool
}

func (c *cell[T]) resolve(force bool, compute func() (T, error)) (T, error) {
	if c.done && !force {
		return c.value, c.err
	}
	c.value, c.err = compute()
	c.done = true
	return c.value, c.err
}
