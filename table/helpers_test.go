package table

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"gridkit/units"
)

type fakeRegion struct {
	x, y, w, h units.Length
	notified   int
	removed    bool
	removeErr  error
}

func (r *fakeRegion) Position() (units.Length, units.Length) { return r.x, r.y }
func (r *fakeRegion) SetPosition(x, y units.Length)          { r.x, r.y = x, y }
func (r *fakeRegion) Size() (units.Length, units.Length)     { return r.w, r.h }

func (r *fakeRegion) NotifySizeChanged(w, h units.Length) {
	r.w, r.h = w, h
	r.notified++
}

func (r *fakeRegion) Remove() error {
	if r.removeErr != nil {
		return r.removeErr
	}
	r.removed = true
	return nil
}

var errRemoveFailed = errors.New("remove failed")

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

// newTable creates rows x cols table with 1cm columns and 0.5cm rows, text
// of every cell set to "r,c".
func newTable(t *testing.T, rows, cols int) (*Table, *fakeRegion) {
	t.Helper()

	reg := &fakeRegion{}
	tbl, err := New(reg, rows, cols, units.Cm(float64(cols)), units.Mm(5*float64(rows)), testLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for c := range tbl.IterCells() {
		r, col, err := c.Index()
		if err != nil {
			t.Fatalf("Index: %v", err)
		}
		c.SetText(string(rune('A'+r)) + string(rune('a'+col)))
	}
	return tbl, reg
}

func mustCell(t *testing.T, tbl *Table, r, c int) Cell {
	t.Helper()

	cell, err := tbl.Cell(r, c)
	if err != nil {
		t.Fatalf("Cell(%d,%d): %v", r, c, err)
	}
	return cell
}

func encode(t *testing.T, tbl *Table) string {
	t.Helper()

	doc := etree.NewDocument()
	doc.SetRoot(tbl.Element())
	s, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return s
}

func countCells(tbl *Table) int {
	n := 0
	for range tbl.IterCells() {
		n++
	}
	return n
}

// texts returns grid of cell texts.
func texts(tbl *Table) [][]string {
	out := make([][]string, 0, tbl.Rows())
	for r := range tbl.Rows() {
		row := make([]string, 0, tbl.Cols())
		for c := range tbl.Cols() {
			row = append(row, Cell{tbl: tbl, id: tbl.cellID(r, c)}.Text())
		}
		out = append(out, row)
	}
	return out
}
