// Package debug renders internal structures as indented text for
// troubleshooting and debug reports.
package debug

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"gridkit/grid"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value, empty value is left out.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	if value != "" {
		tw.w.WriteString(strconv.Quote(value))
	}
	tw.w.WriteByte('\n')
}

// Grid writes node tree rooted at id one node per line.
func (tw TreeWriter) Grid(a *grid.Arena, id grid.NodeID, depth int) {
	n := a.Node(id)
	if n == nil {
		tw.Line(depth, "<invalid node %d>", id)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d", n.Kind, id)
	if n.Extent != 0 {
		fmt.Fprintf(&b, " extent=%s", n.Extent)
	}
	if n.Kind == grid.KindCell {
		if n.RowSpan > 1 || n.ColSpan > 1 {
			fmt.Fprintf(&b, " span=%dx%d", n.RowSpan, n.ColSpan)
		}
		if n.HMerge {
			b.WriteString(" hMerge")
		}
		if n.VMerge {
			b.WriteString(" vMerge")
		}
	}
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		fmt.Fprintf(&b, " %s=%s", k, n.Attrs[k])
	}
	tw.Line(depth, "%s", b.String())

	for _, p := range n.Paragraphs {
		tw.TextBlock(depth+1, "p", p)
	}
	for _, c := range a.Children(id) {
		tw.Grid(a, c, depth+1)
	}
}
