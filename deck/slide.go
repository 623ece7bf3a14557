package deck

import (
	"fmt"

	"github.com/google/uuid"

	"gridkit/table"
	"gridkit/units"
)

// Slide is content container for frames. Slide built outside of document
// (see Draft and Relocate) is detached until registered.
type Slide struct {
	doc    *Document
	layout *Layout
	frames []*Frame
}

// Document returns owning document or nil for detached slide.
func (s *Slide) Document() *Document { return s.doc }
func (s *Slide) Layout() *Layout     { return s.layout }

func (s *Slide) LayoutName() string {
	if s.layout == nil {
		return ""
	}
	return s.layout.Name
}

// Index of the slide in its document, -1 when detached.
func (s *Slide) Index() int {
	if s.doc == nil {
		return -1
	}
	for i, x := range s.doc.slides {
		if x == s {
			return i
		}
	}
	return -1
}

func (s *Slide) Frames() []*Frame {
	return append([]*Frame(nil), s.frames...)
}

// Frame finds frame by name.
func (s *Slide) Frame(name string) (*Frame, error) {
	for _, f := range s.frames {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("frame %q: %w", name, ErrNotFound)
}

// AddTable creates frame at (x, y) holding rows x cols table of w x h size.
func (s *Slide) AddTable(rows, cols int, x, y, w, h units.Length) (*Frame, error) {
	f := s.newFrame(x, y)
	tbl, err := table.New(f, rows, cols, w, h, s.logger().Named("table"))
	if err != nil {
		return nil, err
	}
	return s.place(f, tbl), nil
}

// AddTableSized creates frame at (x, y) with table of explicit column widths
// and row heights.
func (s *Slide) AddTableSized(x, y units.Length, widths, heights []units.Length) (*Frame, error) {
	f := s.newFrame(x, y)
	tbl, err := table.NewSized(f, widths, heights, s.logger().Named("table"))
	if err != nil {
		return nil, err
	}
	return s.place(f, tbl), nil
}

func (s *Slide) newFrame(x, y units.Length) *Frame {
	return &Frame{ID: uuid.New(), x: x, y: y}
}

func (s *Slide) place(f *Frame, tbl *table.Table) *Frame {
	f.tbl = tbl
	s.attach(f)
	return f
}

// attach adds frame to the slide making its name unique within slide.
func (s *Slide) attach(f *Frame) {
	if f.Name == "" || s.hasName(f.Name) {
		f.Name = s.freeName()
	}
	f.slide = s
	s.frames = append(s.frames, f)
}

func (s *Slide) hasName(name string) bool {
	for _, f := range s.frames {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (s *Slide) freeName() string {
	for i := 1; ; i++ {
		if name := fmt.Sprintf("Table %d", i); !s.hasName(name) {
			return name
		}
	}
}

func (s *Slide) detach(f *Frame) bool {
	for i, x := range s.frames {
		if x == f {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			f.slide = nil
			return true
		}
	}
	return false
}

// clone deep copies slide content into detached slide.
func (s *Slide) clone() (*Slide, error) {
	out := &Slide{}
	for _, f := range s.frames {
		nf, err := f.duplicate()
		if err != nil {
			return nil, err
		}
		out.attach(nf)
	}
	return out, nil
}
