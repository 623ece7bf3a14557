package deck

import (
	"go.uber.org/zap"

	"gridkit/units"
)

// Draft is a slide prepared outside of any real document. It lives in its own
// scratch document and is copied into a real one with AppendTo.
type Draft struct {
	scratch *Document
	slide   *Slide
}

// NewDraft creates draft slide which asks for layout named layout when
// appended.
func NewDraft(layout string, log *zap.Logger) (*Draft, error) {
	doc, err := New("draft", []string{layout}, log)
	if err != nil {
		return nil, err
	}
	s, err := doc.AddSlide(doc.layouts[0])
	if err != nil {
		return nil, err
	}
	return &Draft{scratch: doc, slide: s}, nil
}

func (d *Draft) AddTable(rows, cols int, x, y, w, h units.Length) (*Frame, error) {
	return d.slide.AddTable(rows, cols, x, y, w, h)
}

func (d *Draft) AddTableSized(x, y units.Length, widths, heights []units.Length) (*Frame, error) {
	return d.slide.AddTableSized(x, y, widths, heights)
}

func (d *Draft) Frames() []*Frame   { return d.slide.Frames() }
func (d *Draft) LayoutName() string { return d.slide.LayoutName() }
func (d *Draft) Slide() *Slide      { return d.slide }

// AppendTo copies draft to the end of doc. Draft itself stays usable.
func (d *Draft) AppendTo(doc *Document) (*Slide, error) {
	return Relocate(d.slide, doc)
}
