package pysrc

import "fmt"

// ParseError reports structurally invalid source text. It carries the file
// path and, when available, the first error position.
type ParseError struct {
	Path   string
	Line   int // 1-based, 0 when unknown
	Column int // 0-based
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// CompileError reports a tree that cannot be lowered into a code object.
// It should not occur for a tree that parsed cleanly, but the boundary is
// still guarded.
type CompileError struct {
	Path string
	Msg  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}
