package table

import (
	"fmt"

	"gridkit/common"
	"gridkit/units"
)

// Width of the cell, for merge origin the whole merged width.
func (c Cell) Width() units.Length {
	_, col, err := c.Index()
	if err != nil {
		return 0
	}
	span := 1
	if n := c.node(); isOrigin(n) {
		span = n.ColSpan
	}
	widths := c.tbl.Widths()
	return units.Sum(widths[col:min(col+span, len(widths))]...)
}

// Height of the cell, for merge origin the whole merged height.
func (c Cell) Height() units.Length {
	row, _, err := c.Index()
	if err != nil {
		return 0
	}
	span := 1
	if n := c.node(); isOrigin(n) {
		span = n.RowSpan
	}
	heights := c.tbl.Heights()
	return units.Sum(heights[row:min(row+span, len(heights))]...)
}

// CellBounds returns cell rectangle in host coordinates: region position
// plus widths of the columns to the left and heights of the rows above.
func (t *Table) CellBounds(c Cell) (units.Rect, error) {
	if c.tbl != t {
		return units.Rect{}, ErrDifferentTable
	}
	row, col, err := t.CellIndex(c)
	if err != nil {
		return units.Rect{}, err
	}
	var x, y units.Length
	if t.region != nil {
		x, y = t.region.Position()
	}
	return units.Rect{
		X: x + units.Sum(t.Widths()[:col]...),
		Y: y + units.Sum(t.Heights()[:row]...),
		W: c.Width(),
		H: c.Height(),
	}, nil
}

// Coordinate returns requested reference point of the cell rectangle.
func (c Cell) Coordinate(ref common.RefPoint) (units.Point, error) {
	r, err := c.tbl.CellBounds(c)
	if err != nil {
		return units.Point{}, err
	}
	return refPoint(r, ref)
}

func refPoint(r units.Rect, ref common.RefPoint) (units.Point, error) {
	switch ref {
	case common.RefPointTopLeft:
		return r.TopLeft(), nil
	case common.RefPointTopRight:
		return r.TopRight(), nil
	case common.RefPointBottomRight:
		return r.BottomRight(), nil
	case common.RefPointBottomLeft:
		return r.BottomLeft(), nil
	case common.RefPointCenter:
		return r.Center(), nil
	}
	return units.Point{}, fmt.Errorf("reference point %v: %w", ref, ErrTypeMismatch)
}

// Orient moves region so that its ref point lands on (posx, posy).
func Orient(region Region, posx, posy units.Length, ref common.RefPoint) error {
	if region == nil {
		return fmt.Errorf("nil region: %w", ErrTypeMismatch)
	}
	if posx < 0 || posy < 0 {
		return fmt.Errorf("position (%d,%d) is not a positive length: %w", posx, posy, ErrTypeMismatch)
	}
	w, h := region.Size()
	// offset of ref point from the top-left corner
	p, err := refPoint(units.Rect{W: w, H: h}, ref)
	if err != nil {
		return err
	}
	region.SetPosition(posx-p.X, posy-p.Y)
	return nil
}
