package project

import "strings"

// Configuration sections consumed from the abstract store. Values are
// exposed verbatim; interpretation belongs to the external rule engine.
const (
	sectOptions = "rft_option"
	sectFilters = "rft_filter"
	sectRulers  = "rft_ruler"
)

func (p *Project) section(name string) map[string]string {
	out := map[string]string{}
	if p.ctx == nil || p.ctx.Cfg == nil || !p.ctx.Cfg.HasSection(name) {
		return out
	}
	for _, kv := range p.ctx.Cfg.Items(name) {
		out[kv.Key] = kv.Value
	}
	return out
}

// RftOptions returns the refactor options as a flat string-keyed map,
// materialized once per project. Known keys include:
//
//   - rft_remove_assert, rft_remove_docstr: bool
//   - rft_builtin: bool, whether builtin names may be touched
//   - rft_import: bool, always 1
//   - rft_ximport: bool, always 0, "from..import *" is never touched
//   - rft_argument: enum(no, pos, !kw, all)
//   - obf_attribute: enum(no, yes, all), reform attribute nodes to
//     setattr()/getattr()
//   - obf_string: enum(no, yes, all), reform string constants
//   - rft_auto_export: bool, export all names in module.__all__
//   - rft_exclude_names, rft_exclude_args: newline-separated lists
//   - extra_builtins: extra builtin names appended to the default set
//   - on_unknown_attr: enum(ask, log, yes, no, err)
func (p *Project) RftOptions() map[string]string {
	options, _ := p.rftOptions.resolve(false, func() (map[string]string, error) {
		return p.section(sectOptions), nil
	})
	return options
}

// Opt returns one refactor option value, empty when unset.
func (p *Project) Opt(name string) string {
	return p.RftOptions()[name]
}

// RftExcludeNames lists scopes whose names are never renamed. Each ruler
// is a chain of names starting with a package or module name; patterns
// match one level only. Also used to export names manually.
func (p *Project) RftExcludeNames() []string {
	return splitLines(p.Opt("rft_exclude_names"))
}

// RftExcludeArgs lists functions whose arguments are never refactored.
func (p *Project) RftExcludeArgs() []string {
	return splitLines(p.Opt("rft_exclude_args"))
}

// RftFilters returns the refactor filter section as a flat string-keyed
// map of newline-separated pattern lists.
func (p *Project) RftFilters() map[string]string {
	filters, _ := p.rftFilters.resolve(false, func() (map[string]string, error) {
		return p.section(sectFilters), nil
	})
	return filters
}

// ObfIncludeStrings lists the patterns selecting string constants for
// transformation when obf_string is enabled.
func (p *Project) ObfIncludeStrings() []string {
	return splitLines(p.RftFilters()["obf_include_strings"])
}

// ObfAttrFilters lists the patterns selecting attribute nodes for the
// setattr()/getattr() transformation when obf_attribute is enabled.
func (p *Project) ObfAttrFilters() []string {
	return splitLines(p.RftFilters()["obf_attr_filters"])
}

// RftRulers returns the refactor ruler section as a flat string-keyed
// map of newline-separated rulers.
func (p *Project) RftRulers() map[string]string {
	rulers, _ := p.rftRulers.resolve(false, func() (map[string]string, error) {
		return p.section(sectRulers), nil
	})
	return rulers
}

// RftAttrRulers lists rulers for attribute chains whose base type is
// unknown: "x.a" renames attribute a, "!x.a" keeps it.
func (p *Project) RftAttrRulers() []string {
	return splitLines(p.RftRulers()["rft_attr_rulers"])
}

// RftArgRulers lists rulers for argument names in function and call
// nodes, e.g. renaming a key passed through **kwargs.
func (p *Project) RftArgRulers() []string {
	return splitLines(p.RftRulers()["rft_arg_rulers"])
}

// Builtins returns the Python builtin name set, extended by the
// extra_builtins option.
func (p *Project) Builtins() map[string]bool {
	if p.builtins == nil {
		p.builtins = make(map[string]bool, len(pythonBuiltins))
		for _, name := range pythonBuiltins {
			p.builtins[name] = true
		}
		for _, name := range strings.Fields(p.Opt("extra_builtins")) {
			p.builtins[name] = true
		}
	}
	return p.builtins
}

func splitLines(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(value, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			out = append(out, line)
		}
	}
	return out
}
