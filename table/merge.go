package table

import (
	"fmt"

	"go.uber.org/zap"
)

// area is rectangular range of grid positions.
type area struct {
	top, left  int
	rows, cols int
}

func (a area) bottom() int { return a.top + a.rows - 1 }
func (a area) right() int  { return a.left + a.cols - 1 }

func (a area) contains(r, c int) bool {
	return r >= a.top && r <= a.bottom() && c >= a.left && c <= a.right()
}

// each calls fn for every position in row major order.
func (a area) each(fn func(r, c int)) {
	for r := a.top; r <= a.bottom(); r++ {
		for c := a.left; c <= a.right(); c++ {
			fn(r, c)
		}
	}
}

func cornersArea(r1, c1, r2, c2 int) area {
	top, left := min(r1, r2), min(c1, c2)
	return area{top: top, left: left, rows: max(r1, r2) - top + 1, cols: max(c1, c2) - left + 1}
}

// merges returns areas of all merge origins in the table.
func (t *Table) merges() []area {
	var out []area
	for r, rowID := range t.rowIDs() {
		for c, id := range t.arena.Children(rowID) {
			if n := t.arena.Node(id); isOrigin(n) {
				out = append(out, area{top: r, left: c, rows: n.RowSpan, cols: n.ColSpan})
			}
		}
	}
	return out
}

// Merge turns rectangular range with corners a and b (any diagonal, any
// order) into a single merged cell. Non empty content of all cells is moved
// into the top-left cell in row major order.
func (t *Table) Merge(a, b Cell) error {
	if a.tbl != t || b.tbl != t {
		return ErrDifferentTable
	}
	r1, c1, err := t.CellIndex(a)
	if err != nil {
		return err
	}
	r2, c2, err := t.CellIndex(b)
	if err != nil {
		return err
	}
	rng := cornersArea(r1, c1, r2, c2)

	// validate everything before touching the tree
	var overlap error
	rng.each(func(r, c int) {
		n := t.cellNode(r, c)
		if overlap == nil && (isSpanned(n) || isOrigin(n)) {
			overlap = fmt.Errorf("cell (%d,%d) is already merged: %w", r, c, ErrOverlap)
		}
	})
	if overlap != nil {
		return overlap
	}
	if rng.rows == 1 && rng.cols == 1 {
		return nil
	}

	origin := t.cellNode(rng.top, rng.left)
	rng.each(func(r, c int) {
		n := t.cellNode(r, c)
		if n == origin {
			return
		}
		if hasContent(n) {
			origin.Paragraphs = append(origin.Paragraphs, n.Paragraphs...)
		}
		n.Paragraphs = nil
	})
	rng.each(func(r, c int) {
		n := t.cellNode(r, c)
		if r == rng.top {
			n.RowSpan = rng.rows
		}
		if c == rng.left {
			n.ColSpan = rng.cols
		}
		n.HMerge = c > rng.left
		n.VMerge = r > rng.top
	})

	t.log.Debug("Cells merged",
		zap.Int("row", rng.top), zap.Int("col", rng.left),
		zap.Int("rows", rng.rows), zap.Int("cols", rng.cols))
	return nil
}

// Split removes merge originating at c. Content stays in c.
func (t *Table) Split(c Cell) error {
	if c.tbl != t {
		return ErrDifferentTable
	}
	r, col, err := t.CellIndex(c)
	if err != nil {
		return err
	}
	n := c.node()
	if !isOrigin(n) {
		return fmt.Errorf("cell (%d,%d): %w", r, col, ErrNotMergeOrigin)
	}
	rng := area{top: r, left: col, rows: n.RowSpan, cols: n.ColSpan}
	if rng.bottom() >= t.Rows() || rng.right() >= t.Cols() {
		return fmt.Errorf("merge at (%d,%d) extends past table edge: %w", r, col, ErrInvalidGrid)
	}
	rng.each(func(r, c int) {
		n := t.cellNode(r, c)
		n.RowSpan, n.ColSpan = 1, 1
		n.HMerge, n.VMerge = false, false
	})

	t.log.Debug("Cells split",
		zap.Int("row", rng.top), zap.Int("col", rng.left),
		zap.Int("rows", rng.rows), zap.Int("cols", rng.cols))
	return nil
}

// MergeOrigin returns merge origin covering c, or c itself when it is not
// spanned.
func (t *Table) MergeOrigin(c Cell) (Cell, error) {
	r, col, err := t.CellIndex(c)
	if err != nil {
		return Cell{}, err
	}
	for _, m := range t.merges() {
		if m.contains(r, col) {
			return Cell{tbl: t, id: t.cellID(m.top, m.left)}, nil
		}
	}
	if c.IsSpanned() {
		return Cell{}, fmt.Errorf("spanned cell (%d,%d) has no origin: %w", r, col, ErrInvalidGrid)
	}
	return c, nil
}
