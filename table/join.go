package table

import (
	"fmt"

	"go.uber.org/zap"

	"gridkit/common"
	"gridkit/grid"
)

// JoinOptions control reconciliation of tables of different size.
type JoinOptions struct {
	// Trim removes extra rows (columns) from the larger table, otherwise the
	// smaller one is padded with empty rows (columns).
	Trim bool
	// RemoveDonor removes donor's region from its document after join.
	RemoveDonor bool
}

// Join attaches copy of donor to the requested side of t. For left and right
// joins row counts are reconciled and donor columns are grafted into t rows,
// for top and bottom joins column counts are reconciled and donor rows are
// grafted. Row heights (column widths) of t win over donor ones along the
// seam. Merged cells on both sides are kept as is, no attempt is made to
// align them across the seam.
func (t *Table) Join(donor *Table, side common.Side, opts JoinOptions) error {
	if donor == nil {
		return fmt.Errorf("nil donor table: %w", ErrTypeMismatch)
	}
	if !side.IsValid() {
		return fmt.Errorf("join side %v: %w", side, ErrTypeMismatch)
	}
	if donor == t && opts.RemoveDonor {
		return fmt.Errorf("table cannot be joined to itself with donor removal: %w", ErrTypeMismatch)
	}
	if t.Rows() < 1 || t.Cols() < 1 || donor.Rows() < 1 || donor.Cols() < 1 {
		return fmt.Errorf("join of %dx%d and %dx%d tables: %w",
			t.Rows(), t.Cols(), donor.Rows(), donor.Cols(), ErrDimensionMismatch)
	}

	horizontal := side.Horizontal()
	mine, theirs := t.Cols(), donor.Cols()
	if horizontal {
		mine, theirs = t.Rows(), donor.Rows()
	}
	diff := mine - theirs

	// Everything which may fail is checked before the first mutation.
	if opts.Trim && diff > 0 {
		if err := t.checkDelete(horizontal, theirs, diff); err != nil {
			return fmt.Errorf("unable to trim joined table: %w", err)
		}
	}
	if opts.Trim && diff < 0 {
		if err := donor.checkDelete(horizontal, mine, -diff); err != nil {
			return fmt.Errorf("unable to trim donor table: %w", err)
		}
	}

	cp, err := t.arena.CloneSubtree(donor.arena, donor.root)
	if err != nil {
		return fmt.Errorf("unable to copy donor table: %w", err)
	}
	// staging view over the copy, never notifies anybody
	staged := attach(t.arena, cp, nil, t.log)

	// Donor removal is the last step which may fail, nothing below can. The
	// detached copy left in the arena on failure is not part of any tree.
	if opts.RemoveDonor && donor.region != nil {
		if err := donor.region.Remove(); err != nil {
			return fmt.Errorf("unable to remove donor: %w", err)
		}
	}

	switch {
	case diff > 0 && opts.Trim:
		t.trim(horizontal, theirs, diff)
	case diff > 0:
		staged.pad(horizontal, diff)
	case diff < 0 && opts.Trim:
		staged.trim(horizontal, mine, -diff)
	case diff < 0:
		t.pad(horizontal, -diff)
	}

	if horizontal {
		t.graftColumns(staged, side.Leading())
	} else {
		t.graftRows(staged, side.Leading())
	}
	t.notify()

	t.log.Debug("Tables joined",
		zap.Stringer("side", side), zap.Bool("trim", opts.Trim),
		zap.Int("rows", t.Rows()), zap.Int("cols", t.Cols()))
	return nil
}

func (t *Table) trim(rows bool, first, n int) {
	if rows {
		t.removeRows(first, n)
	} else {
		t.removeCols(first, n)
	}
}

func (t *Table) pad(rows bool, n int) {
	// n is positive and size defaults to existing last line, can not fail
	var err error
	if rows {
		_, err = t.AddRows(n, 0)
	} else {
		_, err = t.AddColumns(n, 0)
	}
	mustAttach(err)
}

// graftColumns moves donor grid columns and cells of every donor row into t.
// Both tables must have the same number of rows.
func (t *Table) graftColumns(donor *Table, leading bool) {
	move := func(parent grid.NodeID, ids []grid.NodeID) {
		at := t.arena.ChildCount(parent)
		if leading {
			at = 0
		}
		for i, id := range ids {
			mustAttach(t.arena.Remove(id))
			mustAttach(t.arena.Insert(parent, at+i, id))
		}
	}
	move(t.gridNode(), donor.colIDs())
	donorRows := donor.rowIDs()
	for i, row := range t.rowIDs() {
		move(row, t.arena.Children(donorRows[i]))
	}
}

// graftRows moves donor rows into t. Both tables must have the same number of
// columns.
func (t *Table) graftRows(donor *Table, leading bool) {
	at := t.arena.ChildCount(t.root)
	if leading {
		at = 1
	}
	for i, id := range donor.rowIDs() {
		mustAttach(t.arena.Remove(id))
		mustAttach(t.arena.Insert(t.root, at+i, id))
	}
}
