package project

// Component groups what a namespace contributes from one root directory.
type Component struct {
	Path     string
	Modules  []*Module
	Children []Unit // each child is a *Namespace or *Package
}

// Namespace represents an implicit namespace package: a directory without
// __init__ that still forms an importable namespace, possibly split
// across multiple root directories. Merge semantics across roots are a
// separate resolution pass and are not implemented by this core.
type Namespace struct {
	parent     Owner
	name       string
	components []Component
}

// NewNamespace creates a namespace unit parented to owner.
func NewNamespace(name string, parent Owner) *Namespace {
	return &Namespace{parent: parent, name: name}
}

// Name returns the namespace identifier.
func (n *Namespace) Name() string {
	return n.name
}

// QualName joins ancestor names up to the project root.
func (n *Namespace) QualName() string {
	if n.parent == nil {
		return n.name
	}
	if _, ok := n.parent.(*Project); ok {
		return n.name
	}
	return n.parent.QualName() + "." + n.name
}

// Project walks the parent chain up to the owning project.
func (n *Namespace) Project() *Project {
	if p, ok := n.parent.(*Project); ok {
		return p
	}
	if n.parent == nil {
		return nil
	}
	return n.parent.Project()
}

// Components enumerates the constituent (path, modules, children)
// triples.
func (n *Namespace) Components() []Component {
	return n.components
}

// WalkModules visits the modules of every component depth-first,
// pre-order.
func (n *Namespace) WalkModules(fn func(*Module) error) error {
	for _, component := range n.components {
		for _, m := range component.Modules {
			if err := fn(m); err != nil {
				return err
			}
		}
		for _, child := range component.Children {
			switch unit := child.(type) {
			case *Package:
				if err := unit.WalkModules(fn); err != nil {
					return err
				}
			case *Namespace:
				if err := unit.WalkModules(fn); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
