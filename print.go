package aabbtree

import (
	"fmt"
	"io"
	"strings"
)

// Print writes an indented depth-first dump of the tree to w, one line per
// node. Inner nodes are tagged 'O', leaves 'L'; leaf lines append the
// payload's textual form. The format is diagnostic only, there is no
// round-trip contract.
func (t *Tree[U]) Print(w io.Writer) {
	if t.Empty() {
		return
	}
	printNode[U](w, t.root, "  ", 0)
}

func printNode[U any](w io.Writer, n treeNode[U], indent string, level int) {
	prefix := strings.Repeat(indent, level)
	switch n := n.(type) {
	case *leafNode[U]:
		fmt.Fprintf(w, "%sL %v: %v\n", prefix, n.box, n.data)
	case *innerNode[U]:
		fmt.Fprintf(w, "%sO %v\n", prefix, n.box)
		printNode[U](w, n.left, indent, level+1)
		printNode[U](w, n.right, indent, level+1)
	}
}
