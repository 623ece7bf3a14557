package table

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gridkit/units"
)

func TestAddDeleteRowsRoundTrip(t *testing.T) {
	tbl, reg := newTable(t, 2, 3)
	widths := tbl.Widths()

	added, err := tbl.AddRows(3, 0)
	if err != nil {
		t.Fatalf("AddRows: %v", err)
	}
	if len(added) != 3 || tbl.Rows() != 5 {
		t.Fatalf("added %d rows, table has %d", len(added), tbl.Rows())
	}
	for _, r := range added {
		if r.Height() != units.Mm(5) {
			t.Errorf("default height %d", r.Height())
		}
		if len(r.Cells()) != 3 {
			t.Errorf("new row has %d cells", len(r.Cells()))
		}
	}
	if reg.h != units.Mm(25) {
		t.Errorf("region height %d", reg.h)
	}
	if countCells(tbl) != 15 {
		t.Errorf("cell count %d", countCells(tbl))
	}

	for range 3 {
		if err := tbl.DeleteRow(-1); err != nil {
			t.Fatalf("DeleteRow: %v", err)
		}
	}
	if tbl.Rows() != 2 || reg.h != units.Mm(10) {
		t.Errorf("rows %d, region height %d", tbl.Rows(), reg.h)
	}
	if diff := cmp.Diff(widths, tbl.Widths()); diff != "" {
		t.Errorf("row operations changed widths (-want +got):\n%s", diff)
	}
}

func TestAddDeleteColumnsRoundTrip(t *testing.T) {
	tbl, reg := newTable(t, 3, 2)
	heights := tbl.Heights()

	cols, err := tbl.AddColumns(2, units.Cm(3))
	if err != nil {
		t.Fatalf("AddColumns: %v", err)
	}
	if len(cols) != 2 || cols[1].Index() != 3 || len(cols[0].Cells()) != 3 {
		t.Fatalf("bad added columns")
	}
	if reg.w != units.Cm(8) {
		t.Errorf("region width %d", reg.w)
	}
	if countCells(tbl) != 12 {
		t.Errorf("cell count %d", countCells(tbl))
	}
	if err := tbl.DeleteColumn(0); err != nil {
		t.Fatalf("DeleteColumn: %v", err)
	}
	if err := tbl.DeleteColumn(-1); err != nil {
		t.Fatalf("DeleteColumn: %v", err)
	}
	want := [][]string{{"Ab", ""}, {"Bb", ""}, {"Cb", ""}}
	if diff := cmp.Diff(want, texts(tbl)); diff != "" {
		t.Errorf("texts (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]units.Length{units.Cm(1), units.Cm(3)}, tbl.Widths()); diff != "" {
		t.Errorf("widths (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(heights, tbl.Heights()); diff != "" {
		t.Errorf("column operations changed heights (-want +got):\n%s", diff)
	}
	if cols[1].Index() != -1 || cols[1].Cells() != nil {
		t.Error("deleted column still reports position")
	}
}

func TestEditErrors(t *testing.T) {
	tbl, _ := newTable(t, 2, 2)
	if _, err := tbl.AddRows(0, 0); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AddRows(0): %v", err)
	}
	if _, err := tbl.AddColumns(1, -1); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AddColumns negative width: %v", err)
	}
	if err := tbl.DeleteRow(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("DeleteRow(2): %v", err)
	}
	if err := tbl.DeleteColumn(-3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("DeleteColumn(-3): %v", err)
	}
	if err := tbl.DeleteRow(0); err != nil {
		t.Fatalf("DeleteRow: %v", err)
	}
	if err := tbl.DeleteRow(0); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("deleting last row: %v", err)
	}
	row, _ := tbl.Row(0)
	if err := row.SetHeight(0); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("zero height: %v", err)
	}
}

func TestDeleteThroughMerge(t *testing.T) {
	tbl, _ := newTable(t, 4, 4)
	// 2x2 block at rows 1-2, cols 1-2 and horizontal strip in row 3
	if err := tbl.Merge(mustCell(t, tbl, 1, 1), mustCell(t, tbl, 2, 2)); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if err := tbl.Merge(mustCell(t, tbl, 3, 0), mustCell(t, tbl, 3, 3)); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	before := encode(t, tbl)
	for _, row := range []int{1, 2} {
		if err := tbl.DeleteRow(row); !errors.Is(err, ErrSpanConflict) || !errors.Is(err, ErrOverlap) {
			t.Errorf("DeleteRow(%d): %v", row, err)
		}
	}
	for _, col := range []int{0, 1, 2, 3} {
		if err := tbl.DeleteColumn(col); !errors.Is(err, ErrSpanConflict) {
			t.Errorf("DeleteColumn(%d): %v", col, err)
		}
	}
	if encode(t, tbl) != before {
		t.Fatal("rejected deletes modified table")
	}

	// horizontal strip lies entirely inside row 3
	if err := tbl.DeleteRow(3); err != nil {
		t.Fatalf("DeleteRow(3): %v", err)
	}
	if err := tbl.DeleteColumn(0); err != nil {
		t.Fatalf("DeleteColumn(0): %v", err)
	}
	if err := tbl.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if !mustCell(t, tbl, 1, 0).IsMergeOrigin() {
		t.Error("block merge lost its origin")
	}
}

func TestRowColumnResize(t *testing.T) {
	tbl, reg := newTable(t, 2, 2)
	col, _ := tbl.Column(-1)
	if err := col.SetWidth(units.Cm(4)); err != nil {
		t.Fatalf("SetWidth: %v", err)
	}
	row, _ := tbl.Row(0)
	if err := row.SetHeight(units.Cm(2)); err != nil {
		t.Fatalf("SetHeight: %v", err)
	}
	if reg.w != units.Cm(5) || reg.h != units.Cm(2)+units.Mm(5) {
		t.Errorf("region size %dx%d", reg.w, reg.h)
	}
	if row.Index() != 0 || col.Index() != 1 {
		t.Errorf("indexes %d %d", row.Index(), col.Index())
	}
}
