package deck

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridkit/table"
	"gridkit/units"
)

const (
	tagDeck    = "deck"
	tagLayouts = "layouts"
	tagLayout  = "layout"
	tagSlide   = "slide"
	tagFrame   = "frame"
	tagTable   = "tbl"
)

// Element renders the whole document.
func (d *Document) Element() *etree.Element {
	root := etree.NewElement(tagDeck)
	root.CreateAttr("id", d.ID.String())
	if d.Name != "" {
		root.CreateAttr("name", d.Name)
	}
	ls := root.CreateElement(tagLayouts)
	for _, l := range d.layouts {
		ls.CreateElement(tagLayout).CreateAttr("name", l.Name)
	}
	for _, s := range d.slides {
		se := root.CreateElement(tagSlide)
		se.CreateAttr("layout", s.LayoutName())
		for _, f := range s.frames {
			fe := se.CreateElement(tagFrame)
			fe.CreateAttr("id", f.ID.String())
			fe.CreateAttr("name", f.Name)
			fe.CreateAttr("x", f.x.String())
			fe.CreateAttr("y", f.y.String())
			fe.CreateAttr("w", f.w.String())
			fe.CreateAttr("h", f.h.String())
			fe.AddChild(f.tbl.Element())
		}
	}
	return root
}

// Write stores document as indented XML.
func (d *Document) Write(w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(d.Element())
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write deck: %w", err)
	}
	return nil
}

func (d *Document) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create deck file: %w", err)
	}
	if err := d.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Read loads document stored by Write. Every table is validated.
func Read(r io.Reader, log *zap.Logger) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to parse deck: %w", err)
	}
	return decode(doc.Root(), log)
}

func ReadFile(path string, log *zap.Logger) (*Document, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open deck file: %w", err)
	}
	defer in.Close()
	return Read(in, log)
}

func decode(root *etree.Element, log *zap.Logger) (*Document, error) {
	if root == nil || root.Tag != tagDeck {
		return nil, fmt.Errorf("no %s root element: %w", tagDeck, ErrBadDeck)
	}

	var names []string
	if ls := root.SelectElement(tagLayouts); ls != nil {
		for _, l := range ls.SelectElements(tagLayout) {
			names = append(names, l.SelectAttrValue("name", ""))
		}
	}
	d, err := New(root.SelectAttrValue("name", ""), names, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDeck, err)
	}
	if id := root.SelectAttrValue("id", ""); id != "" {
		if d.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("deck id: %w: %w", ErrBadDeck, err)
		}
	}

	for i, se := range root.SelectElements(tagSlide) {
		name := se.SelectAttrValue("layout", "")
		layout := d.Layout(name)
		if layout == nil {
			return nil, fmt.Errorf("slide %d: layout %q: %w", i, name, ErrBadDeck)
		}
		s, err := d.AddSlide(layout)
		if err != nil {
			return nil, err
		}
		for j, fe := range se.SelectElements(tagFrame) {
			f, err := decodeFrame(fe, s)
			if err != nil {
				return nil, fmt.Errorf("slide %d frame %d: %w", i, j, err)
			}
			s.attach(f)
		}
	}
	return d, nil
}

func decodeFrame(fe *etree.Element, s *Slide) (*Frame, error) {
	f := &Frame{Name: fe.SelectAttrValue("name", "")}
	var err error
	if id := fe.SelectAttrValue("id", ""); id == "" {
		f.ID = uuid.New()
	} else if f.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("frame id: %w: %w", ErrBadDeck, err)
	}
	if f.x, err = lengthAttr(fe, "x"); err != nil {
		return nil, err
	}
	if f.y, err = lengthAttr(fe, "y"); err != nil {
		return nil, err
	}
	te := fe.SelectElement(tagTable)
	if te == nil {
		return nil, fmt.Errorf("frame %q has no table: %w", f.Name, ErrBadDeck)
	}
	// size comes from the table itself
	if f.tbl, err = table.Decode(te, f, s.logger().Named("table")); err != nil {
		return nil, err
	}
	return f, nil
}

func lengthAttr(el *etree.Element, name string) (units.Length, error) {
	raw := el.SelectAttrValue(name, "0")
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w: %w", name, ErrBadDeck, err)
	}
	return units.Length(v), nil
}
