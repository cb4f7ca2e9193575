package aabbtree

import (
	"fmt"
	"io"
)

type nodeids[U any] struct {
	idTable map[treeNode[U]]int
	max     int
}

func newtable[U any]() nodeids[U] {
	return nodeids[U]{
		idTable: make(map[treeNode[U]]int),
		max:     1,
	}
}

func (ids nodeids[U]) find(node treeNode[U]) int {
	return ids.idTable[node]
}

func (ids *nodeids[U]) alloc(node treeNode[U]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[U any](t *Tree[U], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[U]()
	nodelist, edgelist := "", ""
	var emit func(n treeNode[U]) int
	emit = func(n treeNode[U]) int {
		id := ids.alloc(n)
		switch n := n.(type) {
		case *leafNode[U]:
			label := fmt.Sprintf("%v\\n%v", n.box, n.data)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, leafDotStyles)
		case *innerNode[U]:
			leftID := emit(n.left)
			rightID := emit(n.right)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", id, n.box, innerDotStyles)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, leftID)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, rightID)
		}
		return id
	}
	if !t.Empty() {
		emit(t.root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

const (
	leafDotStyles  = "style=filled,fillcolor=lightgray,shape=box"
	innerDotStyles = "shape=ellipse"
)
