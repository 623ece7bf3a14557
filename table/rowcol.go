package table

import (
	"fmt"

	"gridkit/grid"
	"gridkit/units"
)

// Row is a handle to a table row.
type Row struct {
	tbl *Table
	id  grid.NodeID
}

func (r Row) ID() grid.NodeID { return r.id }

// Index returns position of the row or -1 if it was deleted.
func (r Row) Index() int {
	if r.tbl.arena.Parent(r.id) != r.tbl.root {
		return -1
	}
	return r.tbl.arena.IndexOf(r.id) - 1
}

func (r Row) Height() units.Length {
	return r.tbl.arena.Node(r.id).Extent
}

// SetHeight changes row height and resizes owning region.
func (r Row) SetHeight(h units.Length) error {
	if h <= 0 {
		return fmt.Errorf("row height %d: %w", h, ErrTypeMismatch)
	}
	r.tbl.arena.Node(r.id).Extent = h
	r.tbl.notify()
	return nil
}

func (r Row) Cells() []Cell {
	ids := r.tbl.arena.Children(r.id)
	out := make([]Cell, len(ids))
	for i, id := range ids {
		out[i] = Cell{tbl: r.tbl, id: id}
	}
	return out
}

// Column is a handle to a grid column descriptor.
type Column struct {
	tbl *Table
	id  grid.NodeID
}

func (c Column) ID() grid.NodeID { return c.id }

// Index returns position of the column or -1 if it was deleted.
func (c Column) Index() int {
	if c.tbl.arena.Parent(c.id) != c.tbl.gridNode() {
		return -1
	}
	return c.tbl.arena.IndexOf(c.id)
}

func (c Column) Width() units.Length {
	return c.tbl.arena.Node(c.id).Extent
}

// SetWidth changes column width and resizes owning region.
func (c Column) SetWidth(w units.Length) error {
	if w <= 0 {
		return fmt.Errorf("column width %d: %w", w, ErrTypeMismatch)
	}
	c.tbl.arena.Node(c.id).Extent = w
	c.tbl.notify()
	return nil
}

// Cells returns cells of the column top to bottom.
func (c Column) Cells() []Cell {
	idx := c.Index()
	if idx < 0 {
		return nil
	}
	rows := c.tbl.rowIDs()
	out := make([]Cell, len(rows))
	for i := range rows {
		out[i] = Cell{tbl: c.tbl, id: c.tbl.cellID(i, idx)}
	}
	return out
}
