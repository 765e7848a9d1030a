package project

import "strings"

// Caller identifies a call site by module and enclosing scope chain.
type Caller struct {
	Module string
	Scopes []string
}

// LogUnknownVar records a variable in a chained attribute the analyzer
// could not resolve, keyed "module:name".
func (p *Project) LogUnknownVar(module, name string) {
	key := module + ":" + name
	if !contains(p.UnknownVars, key) {
		p.UnknownVars = append(p.UnknownVars, key)
	}
}

// LogUnknownCall records a "module:scope:name" key for a function called
// with **kwargs the analyzer could not map. A trailing name without an
// attribute chain is redirected to the unknown-variable log as
// "module:scope.name".
func (p *Project) LogUnknownCall(key string) {
	fields := strings.SplitN(key, ":", 3)
	if len(fields) == 3 && !strings.Contains(fields[2], ".") {
		p.LogUnknownVar(fields[0], fields[1]+"."+fields[2])
		return
	}
	if !contains(p.UnknownArgs, key) {
		p.UnknownArgs = append(p.UnknownArgs, key)
	}
}

// LogUnknownCaller records a caller invoked with keyword arguments the
// analyzer could not map, keyed "module:scope.scope...".
func (p *Project) LogUnknownCaller(caller *Caller) {
	name := caller.Module + ":" + strings.Join(caller.Scopes, ".")
	if !contains(p.UnknownCalls, name) {
		p.UnknownCalls = append(p.UnknownCalls, name)
	}
}

// LogUnknownAttr records an attribute used but not defined on owner.
func (p *Project) LogUnknownAttr(owner, attr string) {
	for _, x := range p.UnknownAttrs[owner] {
		if x == attr {
			return
		}
	}
	p.UnknownAttrs[owner] = append(p.UnknownAttrs[owner], attr)
}

func contains(list []string, value string) bool {
	for _, x := range list {
		if x == value {
			return true
		}
	}
	return false
}
