// Package table implements a grid of cells on top of grid node tree: merged
// cells, row and column editing, joining tables edge to edge and cell
// geometry relative to the host region.
//
// Tree shape is fixed: table node has grid node as its first child followed
// by row nodes. Grid node children are grid columns carrying widths, row
// nodes carry heights and have exactly one cell child per grid column.
package table

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"gridkit/grid"
	"gridkit/units"
)

// Region is the host object owning a table. Table keeps region size equal to
// the sum of its column widths and row heights.
type Region interface {
	Position() (x, y units.Length)
	SetPosition(x, y units.Length)
	Size() (w, h units.Length)
	// NotifySizeChanged is called after every change of row heights or
	// column widths.
	NotifySizeChanged(w, h units.Length)
	// Remove detaches region (and so the table) from its host document.
	Remove() error
}

// Flag is a table level formatting switch. Table stores flags but does not
// interpret them.
type Flag string

const (
	FlagFirstRow    Flag = "firstRow"
	FlagFirstCol    Flag = "firstCol"
	FlagLastRow     Flag = "lastRow"
	FlagLastCol     Flag = "lastCol"
	FlagHorzBanding Flag = "bandRow"
	FlagVertBanding Flag = "bandCol"
)

// Flags lists all known flags in serialization order.
var Flags = []Flag{FlagFirstRow, FlagFirstCol, FlagLastRow, FlagLastCol, FlagHorzBanding, FlagVertBanding}

type Table struct {
	arena  *grid.Arena
	root   grid.NodeID
	region Region
	log    *zap.Logger
}

// New creates rows x cols table of the requested overall size. Size is
// divided evenly, any remainder goes to the last row or column.
func New(region Region, rows, cols int, width, height units.Length, log *zap.Logger) (*Table, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("table %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}
	return NewSized(region, split(width, cols), split(height, rows), log)
}

func split(total units.Length, n int) []units.Length {
	out := make([]units.Length, n)
	each := total / units.Length(n)
	for i := range out {
		out[i] = each
	}
	out[n-1] += total - each*units.Length(n)
	return out
}

// NewSized creates table with explicit column widths and row heights.
func NewSized(region Region, widths, heights []units.Length, log *zap.Logger) (*Table, error) {
	if len(widths) == 0 || len(heights) == 0 {
		return nil, fmt.Errorf("table %dx%d: %w", len(heights), len(widths), ErrDimensionMismatch)
	}
	for _, l := range append(append([]units.Length(nil), widths...), heights...) {
		if l <= 0 {
			return nil, fmt.Errorf("non positive row or column size %d: %w", l, ErrTypeMismatch)
		}
	}

	a := grid.NewArena()
	root := a.New(grid.KindTable)
	g := a.New(grid.KindGrid)
	mustAttach(a.Append(root, g))
	for _, w := range widths {
		gc := a.New(grid.KindGridCol)
		a.Node(gc).Extent = w
		mustAttach(a.Append(g, gc))
	}
	for _, h := range heights {
		mustAttach(a.Append(root, newRow(a, h, len(widths))))
	}

	t := attach(a, root, region, log)
	t.notify()
	return t, nil
}

// attach wraps existing tree, it does not validate or notify.
func attach(a *grid.Arena, root grid.NodeID, region Region, log *zap.Logger) *Table {
	if log == nil {
		log = zap.NewNop()
	}
	return &Table{arena: a, root: root, region: region, log: log}
}

func newRow(a *grid.Arena, h units.Length, cells int) grid.NodeID {
	row := a.New(grid.KindRow)
	a.Node(row).Extent = h
	for range cells {
		mustAttach(a.Append(row, a.New(grid.KindCell)))
	}
	return row
}

// mustAttach is used for freshly allocated detached nodes where failure
// means broken arena logic.
func mustAttach(err error) {
	if err != nil {
		panic(fmt.Sprintf("grid tree corrupted: %v", err))
	}
}

// Clone deep copies table into fresh arena owned by another region.
func (t *Table) Clone(region Region) (*Table, error) {
	a := grid.NewArena()
	root, err := a.CloneSubtree(t.arena, t.root)
	if err != nil {
		return nil, fmt.Errorf("unable to clone table: %w", err)
	}
	c := attach(a, root, region, t.log)
	c.notify()
	return c, nil
}

func (t *Table) Region() Region {
	return t.region
}

// Arena and Root expose underlying tree for hosts which need to inspect it.
func (t *Table) Arena() *grid.Arena { return t.arena }
func (t *Table) Root() grid.NodeID  { return t.root }

func (t *Table) gridNode() grid.NodeID {
	g, err := t.arena.Child(t.root, 0)
	if err != nil {
		panic(fmt.Sprintf("table without grid: %v", err))
	}
	return g
}

func (t *Table) rowIDs() []grid.NodeID {
	return t.arena.Children(t.root)[1:]
}

func (t *Table) colIDs() []grid.NodeID {
	return t.arena.Children(t.gridNode())
}

func (t *Table) Rows() int {
	return t.arena.ChildCount(t.root) - 1
}

func (t *Table) Cols() int {
	return t.arena.ChildCount(t.gridNode())
}

// Widths returns column widths left to right.
func (t *Table) Widths() []units.Length {
	return t.extents(t.colIDs())
}

// Heights returns row heights top to bottom.
func (t *Table) Heights() []units.Length {
	return t.extents(t.rowIDs())
}

func (t *Table) extents(ids []grid.NodeID) []units.Length {
	out := make([]units.Length, len(ids))
	for i, id := range ids {
		out[i] = t.arena.Node(id).Extent
	}
	return out
}

// Size returns sums of column widths and row heights.
func (t *Table) Size() (w, h units.Length) {
	return units.Sum(t.Widths()...), units.Sum(t.Heights()...)
}

func (t *Table) notify() {
	if t.region == nil {
		return
	}
	t.region.NotifySizeChanged(t.Size())
}

func (t *Table) Flag(f Flag) bool {
	return t.arena.Node(t.root).Attrs[string(f)] == "1"
}

func (t *Table) SetFlag(f Flag, on bool) {
	n := t.arena.Node(t.root)
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	if on {
		n.Attrs[string(f)] = "1"
	} else {
		delete(n.Attrs, string(f))
	}
}

// normIndex resolves index which may count from the end when negative.
func normIndex(i, n int, what string) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%s index %d of %d: %w", what, i, n, ErrIndexOutOfRange)
	}
	return i, nil
}

// Cell returns cell at zero based row and column, negative indexes count
// from the end.
func (t *Table) Cell(row, col int) (Cell, error) {
	r, err := normIndex(row, t.Rows(), "row")
	if err != nil {
		return Cell{}, err
	}
	c, err := normIndex(col, t.Cols(), "column")
	if err != nil {
		return Cell{}, err
	}
	return Cell{tbl: t, id: t.cellID(r, c)}, nil
}

func (t *Table) cellID(r, c int) grid.NodeID {
	id, err := t.arena.Child(t.rowIDs()[r], c)
	if err != nil {
		panic(fmt.Sprintf("row %d is short: %v", r, err))
	}
	return id
}

// cellNode is a shortcut used by algorithms working with indexes.
func (t *Table) cellNode(r, c int) *grid.Node {
	return t.arena.Node(t.cellID(r, c))
}

func (t *Table) Row(i int) (Row, error) {
	i, err := normIndex(i, t.Rows(), "row")
	if err != nil {
		return Row{}, err
	}
	return Row{tbl: t, id: t.rowIDs()[i]}, nil
}

func (t *Table) Column(i int) (Column, error) {
	i, err := normIndex(i, t.Cols(), "column")
	if err != nil {
		return Column{}, err
	}
	return Column{tbl: t, id: t.colIDs()[i]}, nil
}

// IterCells yields every grid cell left to right, top to bottom, spanned
// cells included.
func (t *Table) IterCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, r := range t.rowIDs() {
			for _, c := range t.arena.Children(r) {
				if !yield(Cell{tbl: t, id: c}) {
					return
				}
			}
		}
	}
}

// IterRealCells yields cells which are not spanned by a merge.
func (t *Table) IterRealCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range t.IterCells() {
			if c.IsSpanned() {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// CellIndex returns row and column of the cell.
func (t *Table) CellIndex(c Cell) (row, col int, err error) {
	if c.tbl != t {
		return 0, 0, ErrDifferentTable
	}
	rowID := t.arena.Parent(c.id)
	if rowID == grid.None || t.arena.Parent(rowID) != t.root {
		return 0, 0, fmt.Errorf("cell %d is no longer part of the table: %w", c.id, ErrIndexOutOfRange)
	}
	return t.arena.IndexOf(rowID) - 1, t.arena.IndexOf(c.id), nil
}
