package table

import (
	"fmt"

	"go.uber.org/multierr"

	"gridkit/grid"
)

// Validate checks tree shape and grid invariants: every row has a cell per
// grid column, every merge fits into the table, merges do not overlap,
// spanned cells are flagged according to their position in the merge and
// have no content of their own. All problems found are reported.
func (t *Table) Validate() error {
	a := t.arena
	if n := a.Node(t.root); n == nil || n.Kind != grid.KindTable {
		return fmt.Errorf("root is not a table node: %w", ErrInvalidGrid)
	}
	kids := a.Children(t.root)
	if len(kids) == 0 || a.Node(kids[0]).Kind != grid.KindGrid {
		return fmt.Errorf("table has no grid: %w", ErrInvalidGrid)
	}

	var err error
	cols := a.Children(kids[0])
	if len(cols) == 0 {
		err = multierr.Append(err, fmt.Errorf("grid has no columns: %w", ErrInvalidGrid))
	}
	for i, id := range cols {
		if n := a.Node(id); n.Kind != grid.KindGridCol || n.Extent <= 0 {
			err = multierr.Append(err, fmt.Errorf("grid column %d: bad %s of width %d: %w", i, n.Kind, n.Extent, ErrInvalidGrid))
		}
	}
	rows := kids[1:]
	if len(rows) == 0 {
		err = multierr.Append(err, fmt.Errorf("table has no rows: %w", ErrInvalidGrid))
	}
	for i, id := range rows {
		n := a.Node(id)
		if n.Kind != grid.KindRow || n.Extent <= 0 {
			err = multierr.Append(err, fmt.Errorf("row %d: bad %s of height %d: %w", i, n.Kind, n.Extent, ErrInvalidGrid))
			continue
		}
		if got := a.ChildCount(id); got != len(cols) {
			err = multierr.Append(err, fmt.Errorf("row %d has %d cells, grid has %d columns: %w", i, got, len(cols), ErrInvalidGrid))
			continue
		}
		for j, cid := range a.Children(id) {
			c := a.Node(cid)
			if c.Kind != grid.KindCell || c.RowSpan < 1 || c.ColSpan < 1 {
				err = multierr.Append(err, fmt.Errorf("cell (%d,%d): bad %s with span %dx%d: %w", i, j, c.Kind, c.RowSpan, c.ColSpan, ErrInvalidGrid))
			}
		}
	}
	if err != nil {
		// span checks below index cells directly
		return err
	}
	return t.validateMerges()
}

func (t *Table) validateMerges() error {
	nr, nc := t.Rows(), t.Cols()
	owner := make([][]int, nr)
	for r := range owner {
		owner[r] = make([]int, nc)
		for c := range owner[r] {
			owner[r][c] = -1
		}
	}

	var err error
	for k, m := range t.merges() {
		// compared without adding, spans may be arbitrarily large
		if m.rows > nr-m.top || m.cols > nc-m.left {
			err = multierr.Append(err, fmt.Errorf("merge at (%d,%d) of %dx%d extends past table edge: %w", m.top, m.left, m.rows, m.cols, ErrInvalidGrid))
			continue
		}
		m.each(func(r, c int) {
			if owner[r][c] >= 0 {
				err = multierr.Append(err, fmt.Errorf("cell (%d,%d) belongs to two merges: %w", r, c, ErrInvalidGrid))
				return
			}
			owner[r][c] = k
			if r == m.top && c == m.left {
				return
			}
			n := t.cellNode(r, c)
			if n.HMerge != (c > m.left) || n.VMerge != (r > m.top) {
				err = multierr.Append(err, fmt.Errorf("cell (%d,%d) has wrong merge flags: %w", r, c, ErrInvalidGrid))
			}
			if hasContent(n) {
				err = multierr.Append(err, fmt.Errorf("spanned cell (%d,%d) has content: %w", r, c, ErrInvalidGrid))
			}
		})
	}
	for r := range nr {
		for c := range nc {
			if owner[r][c] < 0 && isSpanned(t.cellNode(r, c)) {
				err = multierr.Append(err, fmt.Errorf("spanned cell (%d,%d) is not covered by any merge: %w", r, c, ErrInvalidGrid))
			}
		}
	}
	return err
}
