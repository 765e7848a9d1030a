package project

import (
	"fmt"
	"strings"
)

const dotIndent = "  "

// AsDot renders the project tree as a graph-description document for
// external visualization: one nested cluster per package, one node per
// module. The emitted text is not parsed or validated here.
func (p *Project) AsDot() (string, error) {
	var buf strings.Builder
	buf.WriteString("graph {\n")
	buf.WriteString(dotIndent + "layout=osage\n")
	buf.WriteString(dotIndent + "subgraph cluster_0 {\n")
	inner := strings.Repeat(dotIndent, 2)
	buf.WriteString(inner + "label=\"Project Structure\";\n")
	for _, m := range p.modules {
		buf.WriteString(inner + m.dot() + "\n")
	}
	for _, pkg := range p.packages {
		if err := pkg.dotInto(&buf, inner); err != nil {
			return "", err
		}
	}
	buf.WriteString(dotIndent + "}\n")
	buf.WriteString("}")
	return buf.String(), nil
}

// dotInto emits the package as a nested subgraph cluster at the given
// indentation, loading children as needed.
func (p *Package) dotInto(buf *strings.Builder, prefix string) error {
	modules, err := p.Modules()
	if err != nil {
		return err
	}
	packages, err := p.SubPackages()
	if err != nil {
		return err
	}

	fmt.Fprintf(buf, "%ssubgraph cluster_%d {\n", prefix, clusterID(p.AbsPath()))
	fmt.Fprintf(buf, "%s%slabel=%q;\n", prefix, dotIndent, p.Name())
	for _, m := range modules {
		fmt.Fprintf(buf, "%s%s%s\n", prefix, dotIndent, m.dot())
	}
	for _, sub := range packages {
		if err := sub.dotInto(buf, prefix+dotIndent); err != nil {
			return err
		}
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
	return nil
}
