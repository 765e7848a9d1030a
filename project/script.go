package project

// Script is an entry-point module. Scripts are never imported by other
// units and are exempt from qualname uniqueness.
type Script struct {
	Module
}

// NewScript creates a script for path, parented to owner.
func NewScript(path, name string, parent Owner) *Script {
	return &Script{Module: *NewModule(path, name, parent)}
}

// RPaths lists extra import roots used to map imported names onto project
// modules, e.g. `import abc` resolving to `pkg.abc`. Population belongs
// to the refactor engine integration and is not performed by this core.
func (s *Script) RPaths() []string {
	return nil
}
