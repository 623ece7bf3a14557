package table

import (
	"fmt"

	"go.uber.org/zap"

	"gridkit/grid"
	"gridkit/units"
)

// AddRows appends n rows of empty cells. Zero height means height of the
// current last row.
func (t *Table) AddRows(n int, height units.Length) ([]Row, error) {
	if n < 1 {
		return nil, fmt.Errorf("number of rows to add %d: %w", n, ErrTypeMismatch)
	}
	if height < 0 {
		return nil, fmt.Errorf("row height %d: %w", height, ErrTypeMismatch)
	}
	if height == 0 {
		rows := t.rowIDs()
		height = t.arena.Node(rows[len(rows)-1]).Extent
	}

	cols := t.Cols()
	out := make([]Row, 0, n)
	for range n {
		id := newRow(t.arena, height, cols)
		mustAttach(t.arena.Append(t.root, id))
		out = append(out, Row{tbl: t, id: id})
	}
	t.notify()

	t.log.Debug("Rows added", zap.Int("count", n), zap.Int64("height", int64(height)), zap.Int("rows", t.Rows()))
	return out, nil
}

// AddColumns appends n grid columns and a cell for every row in each of
// them. Zero width means width of the current last column.
func (t *Table) AddColumns(n int, width units.Length) ([]Column, error) {
	if n < 1 {
		return nil, fmt.Errorf("number of columns to add %d: %w", n, ErrTypeMismatch)
	}
	if width < 0 {
		return nil, fmt.Errorf("column width %d: %w", width, ErrTypeMismatch)
	}
	cols := t.colIDs()
	if width == 0 {
		width = t.arena.Node(cols[len(cols)-1]).Extent
	}

	g := t.gridNode()
	out := make([]Column, 0, n)
	for range n {
		id := t.arena.New(grid.KindGridCol)
		t.arena.Node(id).Extent = width
		mustAttach(t.arena.Append(g, id))
		for _, row := range t.rowIDs() {
			mustAttach(t.arena.Append(row, t.arena.New(grid.KindCell)))
		}
		out = append(out, Column{tbl: t, id: id})
	}
	t.notify()

	t.log.Debug("Columns added", zap.Int("count", n), zap.Int64("width", int64(width)), zap.Int("cols", t.Cols()))
	return out, nil
}

// DeleteRow removes row, negative index counts from the end. Row covered by
// a merge spanning several rows cannot be deleted.
func (t *Table) DeleteRow(idx int) error {
	i, err := normIndex(idx, t.Rows(), "row")
	if err != nil {
		return err
	}
	if err := t.checkDelete(true, i, 1); err != nil {
		return err
	}
	t.removeRows(i, 1)
	t.notify()
	return nil
}

// DeleteColumn removes column descriptor and every cell in it, negative
// index counts from the end. Column covered by a merge spanning several
// columns cannot be deleted.
func (t *Table) DeleteColumn(idx int) error {
	i, err := normIndex(idx, t.Cols(), "column")
	if err != nil {
		return err
	}
	if err := t.checkDelete(false, i, 1); err != nil {
		return err
	}
	t.removeCols(i, 1)
	t.notify()
	return nil
}

// checkDelete verifies that band of n rows (or columns) starting at first may
// be removed: something must remain and every merge touching the band must
// lie inside it.
func (t *Table) checkDelete(rows bool, first, n int) error {
	total, what := t.Cols(), "column"
	if rows {
		total, what = t.Rows(), "row"
	}
	if n >= total {
		return fmt.Errorf("deleting %d of %d %ss leaves empty table: %w", n, total, what, ErrDimensionMismatch)
	}
	last := first + n - 1
	for _, m := range t.merges() {
		lo, hi := m.left, m.right()
		if rows {
			lo, hi = m.top, m.bottom()
		}
		if hi < first || lo > last {
			continue
		}
		if lo < first || hi > last {
			return fmt.Errorf("%s %d: merge at (%d,%d) spans %d rows and %d columns: %w",
				what, first, m.top, m.left, m.rows, m.cols, ErrSpanConflict)
		}
	}
	return nil
}

func (t *Table) removeRows(first, n int) {
	rows := t.rowIDs()
	for _, id := range rows[first : first+n] {
		mustAttach(t.arena.Remove(id))
	}
	t.log.Debug("Rows deleted", zap.Int("first", first), zap.Int("count", n), zap.Int("rows", t.Rows()))
}

func (t *Table) removeCols(first, n int) {
	for _, row := range t.rowIDs() {
		cells := t.arena.Children(row)
		for _, id := range cells[first : first+n] {
			mustAttach(t.arena.Remove(id))
		}
	}
	cols := t.colIDs()
	for _, id := range cols[first : first+n] {
		mustAttach(t.arena.Remove(id))
	}
	t.log.Debug("Columns deleted", zap.Int("first", first), zap.Int("count", n), zap.Int("cols", t.Cols()))
}
