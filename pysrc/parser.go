package pysrc

import (
	"context"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/viant/afs"
)

// ModeExec tags trees and code objects built from an executable module.
const ModeExec = "exec"

// Tree is a parsed module syntax tree tagged with its origin path and
// parse mode.
type Tree struct {
	Path   string
	Mode   string
	Source []byte
	tree   *sitter.Tree
}

// Root returns the root syntax node, or nil for an empty tree.
func (t *Tree) Root() *sitter.Node {
	if t == nil || t.tree == nil {
		return nil
	}
	return t.tree.RootNode()
}

func readSource(filename string) ([]byte, error) {
	fs := afs.New()
	if content, _ := fs.DownloadWithURL(context.Background(), filename); len(content) > 0 {
		return content, nil
	}
	return os.ReadFile(filename)
}

// Parse reads, decodes and parses filename as an executable module. A
// syntactically invalid file yields a *ParseError carrying the path and
// the first error position.
func Parse(filename string) (*Tree, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	raw, err := readSource(abs)
	if err != nil {
		return nil, err
	}
	src, err := Decode(raw)
	if err != nil {
		return nil, &ParseError{Path: abs, Msg: err.Error()}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, &ParseError{Path: abs, Msg: err.Error()}
	}

	root := tree.RootNode()
	if root.HasError() {
		line, column := 0, 0
		if node := firstErrorNode(root); node != nil {
			point := node.StartPoint()
			line, column = int(point.Row)+1, int(point.Column)
		}
		return nil, &ParseError{Path: abs, Line: line, Column: column, Msg: "invalid syntax"}
	}

	return &Tree{Path: abs, Mode: ModeExec, Source: src, tree: tree}, nil
}

// firstErrorNode locates the shallowest ERROR or missing node in pre-order.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil || !node.HasError() {
		return nil
	}
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return node
}
