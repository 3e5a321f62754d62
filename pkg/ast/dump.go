package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented, one-node-per-line rendering of the tree. The CLI
// exposes it for inspecting parses; tests use it for readable failures.
func Dump(w io.Writer, node *Node) {
	dumpNode(w, node, 0)
}

func dumpNode(w io.Writer, node *Node, depth int) {
	if node == nil {
		return
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(string(node.Type))
	if node.Text != "" {
		fmt.Fprintf(&b, " '%s'", node.Text)
	}
	if node.Value != nil {
		fmt.Fprintf(&b, " %v", node.Value)
	}
	if node.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", node.Line)
	}
	fmt.Fprintln(w, b.String())
	for _, child := range node.Children {
		dumpNode(w, child, depth+1)
	}
}
