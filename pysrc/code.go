package pysrc

// Code is the executable representation of a parsed module handed to the
// downstream build backend: the validated tree in canonical s-expression
// form, tagged with the origin path and parse mode.
type Code struct {
	Path string
	Mode string
	Body string
}

// Compile lowers a parsed tree into a Code object. A nil or error-bearing
// tree yields a *CompileError.
func Compile(tree *Tree) (*Code, error) {
	root := tree.Root()
	if root == nil {
		path := ""
		if tree != nil {
			path = tree.Path
		}
		return nil, &CompileError{Path: path, Msg: "no syntax tree"}
	}
	if root.HasError() {
		return nil, &CompileError{Path: tree.Path, Msg: "tree contains error nodes"}
	}
	return &Code{Path: tree.Path, Mode: tree.Mode, Body: root.String()}, nil
}
