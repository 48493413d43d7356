package outline

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeText extracts the source text covered by a tree-sitter node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// nodeSpan converts a node's range into a Span with 1-based line/column.
func nodeSpan(node *sitter.Node) Span {
	start := node.StartPosition()
	end := node.EndPosition()
	return Span{
		Start:       int(node.StartByte()),
		End:         int(node.EndByte()),
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column) + 1,
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column) + 1,
	}
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}

// findChildByKind finds the first child node with the given kind.
func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// namedChildren returns all named children of a node in declaration order.
func namedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}

	children := make([]*sitter.Node, 0, node.NamedChildCount())
	for i := uint(0); i < node.NamedChildCount(); i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}
