// Package deck is a minimal slide deck: a document with named layouts and
// slides, each slide holding table frames. Frames are the regions tables
// live in.
package deck

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNoLayouts     = errors.New("document has no layouts")
	ErrUnknownLayout = errors.New("layout does not belong to document")
	ErrDetached      = errors.New("not attached to a document")
	ErrAttached      = errors.New("already attached to a document")
	ErrNotFound      = errors.New("not found")
	ErrBadDeck       = errors.New("malformed deck")
)

type Layout struct {
	Name string
}

type Document struct {
	ID   uuid.UUID
	Name string

	layouts []*Layout
	slides  []*Slide
	log     *zap.Logger
}

// New creates empty document with given layouts, the first layout is used as
// fallback when relocated slide layout has no match.
func New(name string, layouts []string, log *zap.Logger) (*Document, error) {
	if len(layouts) == 0 {
		return nil, ErrNoLayouts
	}
	if log == nil {
		log = zap.NewNop()
	}
	d := &Document{ID: uuid.New(), Name: name, log: log}
	for _, n := range layouts {
		if d.Layout(n) != nil {
			return nil, fmt.Errorf("duplicate layout %q", n)
		}
		d.layouts = append(d.layouts, &Layout{Name: n})
	}
	return d, nil
}

func (d *Document) Logger() *zap.Logger {
	return d.log
}

// Layouts returns document layouts in definition order.
func (d *Document) Layouts() []*Layout {
	return append([]*Layout(nil), d.layouts...)
}

// Layout finds layout by name. Names are compared after canonical Unicode
// composition, so differently encoded accents still match.
func (d *Document) Layout(name string) *Layout {
	for _, l := range d.layouts {
		if sameName(l.Name, name) {
			return l
		}
	}
	return nil
}

func sameName(a, b string) bool {
	return a == b || norm.NFC.String(a) == norm.NFC.String(b)
}

func (d *Document) owns(l *Layout) bool {
	for _, x := range d.layouts {
		if x == l {
			return true
		}
	}
	return false
}

func (d *Document) Slides() []*Slide {
	return append([]*Slide(nil), d.slides...)
}

// Slide returns slide by index, negative index counts from the end.
func (d *Document) Slide(i int) (*Slide, error) {
	n := len(d.slides)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("slide %d of %d: %w", i, n, ErrNotFound)
	}
	return d.slides[i], nil
}

// AddSlide appends new empty slide using layout.
func (d *Document) AddSlide(layout *Layout) (*Slide, error) {
	return d.RegisterContent(&Slide{}, layout)
}

// RegisterContent attaches detached slide to the end of the document using
// layout, which must be one of document layouts.
func (d *Document) RegisterContent(s *Slide, layout *Layout) (*Slide, error) {
	if s.doc != nil {
		return nil, ErrAttached
	}
	if !d.owns(layout) {
		return nil, ErrUnknownLayout
	}
	s.doc, s.layout = d, layout
	d.slides = append(d.slides, s)
	d.log.Debug("Slide registered",
		zap.Stringer("document", d.ID),
		zap.String("layout", layout.Name),
		zap.Int("frames", len(s.frames)))
	return s, nil
}

// RemoveSlide detaches slide from the document, its frames stay with it.
func (d *Document) RemoveSlide(s *Slide) error {
	for i, x := range d.slides {
		if x == s {
			d.slides = append(d.slides[:i], d.slides[i+1:]...)
			s.doc = nil
			return nil
		}
	}
	return ErrDetached
}
