package table

import (
	"errors"
	"fmt"

	"gridkit/grid"
)

// Errors returned by table operations. Every failing operation leaves the
// table exactly as it was before the call.
var (
	ErrTypeMismatch      = errors.New("argument of wrong kind")
	ErrIndexOutOfRange   = grid.ErrIndexOutOfRange
	ErrDifferentTable    = errors.New("cells belong to different tables")
	ErrOverlap           = errors.New("range overlaps existing merge")
	ErrSpanConflict      = fmt.Errorf("line is part of multi-line merge: %w", ErrOverlap)
	ErrNotMergeOrigin    = errors.New("not a merge-origin cell")
	ErrDimensionMismatch = errors.New("table dimensions cannot be reconciled")
	ErrInvalidGrid       = errors.New("inconsistent table grid")
)
