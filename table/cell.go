package table

import (
	"strings"

	"gridkit/grid"
)

// Cell is a handle to a single grid slot. Handles are comparable: two cells
// are equal exactly when they refer to the same tree node.
type Cell struct {
	tbl *Table
	id  grid.NodeID
}

func (c Cell) Table() *Table   { return c.tbl }
func (c Cell) ID() grid.NodeID { return c.id }

func (c Cell) node() *grid.Node {
	return c.tbl.arena.Node(c.id)
}

// Index returns row and column of the cell within its table.
func (c Cell) Index() (row, col int, err error) {
	return c.tbl.CellIndex(c)
}

// IsMergeOrigin is true for the top-left cell of a merged range.
func (c Cell) IsMergeOrigin() bool {
	return isOrigin(c.node())
}

// IsSpanned is true for cells covered by a merge origin. Merge origin itself
// is not spanned.
func (c Cell) IsSpanned() bool {
	return isSpanned(c.node())
}

// SpanHeight is number of rows merged into this cell. Reliable only on merge
// origins.
func (c Cell) SpanHeight() int {
	return c.node().RowSpan
}

// SpanWidth is number of columns merged into this cell. Reliable only on
// merge origins.
func (c Cell) SpanWidth() int {
	return c.node().ColSpan
}

func isOrigin(n *grid.Node) bool {
	return (n.RowSpan > 1 || n.ColSpan > 1) && !n.HMerge && !n.VMerge
}

func isSpanned(n *grid.Node) bool {
	return n.HMerge || n.VMerge
}

func hasContent(n *grid.Node) bool {
	for _, p := range n.Paragraphs {
		if len(p) > 0 {
			return true
		}
	}
	return false
}

// Paragraphs returns copy of cell content.
func (c Cell) Paragraphs() []string {
	return append([]string(nil), c.node().Paragraphs...)
}

// Text returns cell content with paragraphs separated by new lines.
func (c Cell) Text() string {
	return strings.Join(c.node().Paragraphs, "\n")
}

// SetText replaces cell content, every new line starts a paragraph.
func (c Cell) SetText(text string) {
	if len(text) == 0 {
		c.node().Paragraphs = nil
		return
	}
	c.node().Paragraphs = strings.Split(text, "\n")
}

// Merge merges rectangular range having this cell and other as opposite
// corners.
func (c Cell) Merge(other Cell) error {
	return c.tbl.Merge(c, other)
}

// Split removes merge started by this cell.
func (c Cell) Split() error {
	return c.tbl.Split(c)
}
