// Package common keeps enums shared by table engine, host document model and
// edit scripts so none of them has to import the others just for constants.
package common

import (
	"fmt"
	"strconv"
)

//go:generate go tool go-enum --marshal --names

// Edge of the receiving table a donor table is attached to. Numeric values
// are accepted by scripts as well: left=0, right=1, bottom=2, top=3.
// ENUM(left, right, bottom, top)
type Side int

// Horizontal reports whether tables are joined side by side, which requires
// equal row counts.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Leading reports whether donor content goes before existing content.
func (s Side) Leading() bool {
	return s == SideLeft || s == SideTop
}

// Reference point of a bounding rectangle, clockwise from top-left, center
// last.
// ENUM(top-left, top-right, bottom-right, bottom-left, center)
type RefPoint int

// ParseSideOrIndex accepts either side name or its numeric value.
func ParseSideOrIndex(v string) (Side, error) {
	if s, err := ParseSide(v); err == nil {
		return s, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || !Side(n).IsValid() {
		return Side(0), fmt.Errorf("%s is %w", v, ErrInvalidSide)
	}
	return Side(n), nil
}
