package aabbtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette maps the node classes of the console dump to colors. It may
// colorize just a subset; nil entries fall back to the default palette's
// color for that class.
type Palette struct {
	Inner   *color.Color
	Leaf    *color.Color
	Payload *color.Color
}

// DefaultPalette returns the default colors for the console dump.
//
// Colors are switched off when stdout is not an interactive terminal, so
// redirected output stays free of escape sequences.
func DefaultPalette() *Palette {
	pal := &Palette{
		Inner:   color.New(color.FgCyan),
		Leaf:    color.New(color.FgGreen),
		Payload: color.New(color.FgYellow, color.Bold),
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pal.Inner.DisableColor()
		pal.Leaf.DisableColor()
		pal.Payload.DisableColor()
	}
	return pal
}

func (pal *Palette) normalized() *Palette {
	if pal == nil {
		return DefaultPalette()
	}
	def := DefaultPalette()
	filled := *pal
	if filled.Inner == nil {
		filled.Inner = def.Inner
	}
	if filled.Leaf == nil {
		filled.Leaf = def.Leaf
	}
	if filled.Payload == nil {
		filled.Payload = def.Payload
	}
	return &filled
}

// Dump prints a colorized dump of the tree to stdout. If pal is nil, the
// default palette is used.
func Dump[U any](t *Tree[U], pal *Palette) {
	FDump(os.Stdout, t, pal)
}

// FDump writes a colorized dump of the tree to w. The layout is the one
// produced by Print; only the node tags and payloads are colorized.
func FDump[U any](w io.Writer, t *Tree[U], pal *Palette) {
	if t.Empty() {
		return
	}
	dumpNode[U](w, t.root, pal.normalized(), 0)
}

func dumpNode[U any](w io.Writer, n treeNode[U], pal *Palette, level int) {
	prefix := strings.Repeat("  ", level)
	switch n := n.(type) {
	case *leafNode[U]:
		fmt.Fprintf(w, "%s%s %v: %s\n", prefix, pal.Leaf.Sprint("L"), n.box,
			pal.Payload.Sprintf("%v", n.data))
	case *innerNode[U]:
		fmt.Fprintf(w, "%s%s %v\n", prefix, pal.Inner.Sprint("O"), n.box)
		dumpNode[U](w, n.left, pal, level+1)
		dumpNode[U](w, n.right, pal, level+1)
	}
}
