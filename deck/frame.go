package deck

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridkit/table"
	"gridkit/units"
)

// Frame is a positioned box on a slide holding exactly one table. It is the
// table region: table keeps frame size in sync with its rows and columns.
type Frame struct {
	ID   uuid.UUID
	Name string

	slide      *Slide
	x, y, w, h units.Length
	tbl        *table.Table
}

func (f *Frame) Table() *table.Table { return f.tbl }
func (f *Frame) Slide() *Slide       { return f.slide }

func (f *Frame) Position() (units.Length, units.Length) { return f.x, f.y }
func (f *Frame) SetPosition(x, y units.Length)          { f.x, f.y = x, y }
func (f *Frame) Size() (units.Length, units.Length)     { return f.w, f.h }

func (f *Frame) Bounds() units.Rect {
	return units.Rect{X: f.x, Y: f.y, W: f.w, H: f.h}
}

func (f *Frame) NotifySizeChanged(w, h units.Length) {
	f.w, f.h = w, h
}

// Remove detaches frame from its slide.
func (f *Frame) Remove() error {
	if f.slide == nil || !f.slide.detach(f) {
		return fmt.Errorf("frame %q: %w", f.Name, ErrDetached)
	}
	return nil
}

// MoveTo moves frame to slide dst, which may belong to another document.
// With duplicate set the frame stays in place and its deep copy is added to
// dst instead. Returned frame is the one attached to dst.
func (f *Frame) MoveTo(dst *Slide, duplicate bool) (*Frame, error) {
	if dst == nil {
		return nil, fmt.Errorf("frame %q: nil destination: %w", f.Name, ErrDetached)
	}
	if duplicate {
		nf, err := f.duplicate()
		if err != nil {
			return nil, err
		}
		dst.attach(nf)
		dst.logger().Debug("Frame duplicated", zap.String("from", f.Name), zap.String("to", nf.Name))
		return nf, nil
	}
	if f.slide == dst {
		return f, nil
	}
	if f.slide != nil {
		f.slide.detach(f)
	}
	dst.attach(f)
	dst.logger().Debug("Frame moved", zap.String("frame", f.Name), zap.Int("slide", dst.Index()))
	return f, nil
}

// duplicate returns detached deep copy of the frame with new identity.
func (f *Frame) duplicate() (*Frame, error) {
	nf := &Frame{ID: uuid.New(), Name: f.Name, x: f.x, y: f.y, w: f.w, h: f.h}
	tbl, err := f.tbl.Clone(nf)
	if err != nil {
		return nil, fmt.Errorf("unable to copy frame %q: %w", f.Name, err)
	}
	nf.tbl = tbl
	return nf, nil
}

func (s *Slide) logger() *zap.Logger {
	if s.doc == nil {
		return zap.NewNop()
	}
	return s.doc.log
}
