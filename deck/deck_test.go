package deck

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"gridkit/common"
	"gridkit/table"
	"gridkit/units"
)

func newDoc(t *testing.T, layouts ...string) *Document {
	t.Helper()

	d, err := New("test", layouts, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func newSlide(t *testing.T, d *Document, layout string) *Slide {
	t.Helper()

	l := d.Layout(layout)
	if l == nil {
		t.Fatalf("no layout %q", layout)
	}
	s, err := d.AddSlide(l)
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}
	return s
}

func cellText(t *testing.T, f *Frame, r, c int) string {
	t.Helper()

	cell, err := f.Table().Cell(r, c)
	if err != nil {
		t.Fatalf("Cell(%d,%d): %v", r, c, err)
	}
	return cell.Text()
}

func setText(t *testing.T, f *Frame, r, c int, s string) {
	t.Helper()

	cell, err := f.Table().Cell(r, c)
	if err != nil {
		t.Fatalf("Cell(%d,%d): %v", r, c, err)
	}
	cell.SetText(s)
}

func TestNewDocument(t *testing.T) {
	if _, err := New("empty", nil, nil); !errors.Is(err, ErrNoLayouts) {
		t.Errorf("no layouts: %v", err)
	}
	if _, err := New("dup", []string{"Title", "Title"}, nil); err == nil {
		t.Error("duplicate layouts accepted")
	}

	d := newDoc(t, "Title", "Blank")
	var names []string
	for _, l := range d.Layouts() {
		names = append(names, l.Name)
	}
	if diff := cmp.Diff([]string{"Title", "Blank"}, names); diff != "" {
		t.Errorf("layouts (-want +got):\n%s", diff)
	}
}

func TestLayoutNameEquivalence(t *testing.T) {
	// precomposed e-acute against e followed by combining acute
	d := newDoc(t, "R\u00e9sum\u00e9")
	if d.Layout("Re\u0301sume\u0301") == nil {
		t.Error("decomposed name did not match")
	}
	if d.Layout("Resume") != nil {
		t.Error("unaccented name matched")
	}
}

func TestRegisterContent(t *testing.T) {
	d := newDoc(t, "Title")
	other := newDoc(t, "Title")

	if _, err := d.RegisterContent(&Slide{}, other.Layouts()[0]); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("foreign layout: %v", err)
	}
	s := newSlide(t, d, "Title")
	if _, err := other.RegisterContent(s, other.Layouts()[0]); !errors.Is(err, ErrAttached) {
		t.Errorf("attached slide: %v", err)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d", s.Index())
	}
	if err := d.RemoveSlide(s); err != nil {
		t.Fatalf("RemoveSlide: %v", err)
	}
	if s.Index() != -1 || s.Document() != nil || len(d.Slides()) != 0 {
		t.Error("slide still attached after removal")
	}
}

func TestFrameFollowsTableSize(t *testing.T) {
	d := newDoc(t, "Title")
	s := newSlide(t, d, "Title")

	f, err := s.AddTable(2, 3, units.Cm(1), units.Cm(2), units.Cm(6), units.Cm(2))
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	if want := (units.Rect{X: units.Cm(1), Y: units.Cm(2), W: units.Cm(6), H: units.Cm(2)}); f.Bounds() != want {
		t.Errorf("bounds %+v, want %+v", f.Bounds(), want)
	}
	if _, err := f.Table().AddRows(1, units.Cm(3)); err != nil {
		t.Fatalf("AddRows: %v", err)
	}
	if _, h := f.Size(); h != units.Cm(5) {
		t.Errorf("height after AddRows = %v", h)
	}
	if err := f.Table().DeleteColumn(0); err != nil {
		t.Fatalf("DeleteColumn: %v", err)
	}
	if w, _ := f.Size(); w != units.Cm(4) {
		t.Errorf("width after DeleteColumn = %v", w)
	}
	if f.Name != "Table 1" {
		t.Errorf("frame name %q", f.Name)
	}

	if _, err := s.AddTable(0, 3, 0, 0, units.Cm(6), units.Cm(2)); !errors.Is(err, table.ErrDimensionMismatch) {
		t.Errorf("zero rows: %v", err)
	}
	if len(s.Frames()) != 1 {
		t.Error("failed AddTable left frame behind")
	}
}

func TestFrameNamesUnique(t *testing.T) {
	d := newDoc(t, "Title")
	s := newSlide(t, d, "Title")
	for range 3 {
		if _, err := s.AddTableSized(0, 0, []units.Length{10}, []units.Length{10}); err != nil {
			t.Fatalf("AddTableSized: %v", err)
		}
	}
	f, err := s.Frame("Table 2")
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if err := f.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := f.Remove(); !errors.Is(err, ErrDetached) {
		t.Errorf("second Remove: %v", err)
	}
	g, _ := s.AddTableSized(0, 0, []units.Length{10}, []units.Length{10})
	if g.Name != "Table 2" {
		t.Errorf("new frame name %q, want reused Table 2", g.Name)
	}
	if _, err := s.Frame("Table 9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing frame: %v", err)
	}
}

func TestJoinRemovesDonorFrame(t *testing.T) {
	d := newDoc(t, "Title")
	s := newSlide(t, d, "Title")
	a, _ := s.AddTable(2, 2, 0, 0, units.Cm(2), units.Cm(2))
	b, _ := s.AddTable(2, 1, 0, 0, units.Cm(1), units.Cm(2))

	if err := a.Table().Join(b.Table(), common.SideRight, table.JoinOptions{RemoveDonor: true}); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if len(s.Frames()) != 1 || b.Slide() != nil {
		t.Error("donor frame not removed")
	}
	if w, _ := a.Size(); w != units.Cm(3) {
		t.Errorf("joined width %v", w)
	}
}

func TestMoveFrame(t *testing.T) {
	src := newDoc(t, "Title")
	dst := newDoc(t, "Blank")
	s1 := newSlide(t, src, "Title")
	s2 := newSlide(t, dst, "Blank")

	f, _ := s1.AddTable(1, 1, units.Cm(1), units.Cm(1), units.Cm(1), units.Cm(1))
	setText(t, f, 0, 0, "moved")

	dup, err := f.MoveTo(s2, true)
	if err != nil {
		t.Fatalf("MoveTo duplicate: %v", err)
	}
	if dup == f || dup.ID == f.ID || f.Slide() != s1 || dup.Slide() != s2 {
		t.Fatal("duplicate is not a separate frame")
	}
	if dup.Bounds() != f.Bounds() {
		t.Errorf("duplicate bounds %+v, want %+v", dup.Bounds(), f.Bounds())
	}
	setText(t, dup, 0, 0, "copy")
	if got := cellText(t, f, 0, 0); got != "moved" {
		t.Errorf("source changed through duplicate: %q", got)
	}

	moved, err := f.MoveTo(s2, false)
	if err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if moved != f || f.Slide() != s2 || len(s1.Frames()) != 0 || len(s2.Frames()) != 2 {
		t.Error("frame not moved")
	}
	if f.Name == dup.Name {
		t.Errorf("frame names collide: %q", f.Name)
	}
	if _, err := f.MoveTo(nil, false); err == nil {
		t.Error("nil destination accepted")
	}
}

func TestRelocate(t *testing.T) {
	src := newDoc(t, "Title", "Two Content")
	s := newSlide(t, src, "Two Content")
	f, _ := s.AddTable(2, 2, 0, 0, units.Cm(2), units.Cm(2))
	setText(t, f, 1, 1, "x")

	t.Run("layout by name", func(t *testing.T) {
		dst := newDoc(t, "Blank", "Two Content")
		cp, err := Relocate(s, dst)
		if err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		if cp.LayoutName() != "Two Content" || cp.Document() != dst || cp.Index() != 0 {
			t.Errorf("copy on %q at %d", cp.LayoutName(), cp.Index())
		}
		frames := cp.Frames()
		if len(frames) != 1 || cellText(t, frames[0], 1, 1) != "x" {
			t.Fatal("content not copied")
		}
		setText(t, frames[0], 1, 1, "y")
		if cellText(t, f, 1, 1) != "x" {
			t.Error("copy shares cells with source")
		}
		if frames[0].Table().Region() != frames[0] {
			t.Error("copied table is not owned by copied frame")
		}
	})

	t.Run("fallback to first layout", func(t *testing.T) {
		dst := newDoc(t, "Blank", "Title")
		cp, err := Relocate(s, dst)
		if err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		if cp.LayoutName() != "Blank" {
			t.Errorf("layout %q, want Blank", cp.LayoutName())
		}
	})

	if len(src.Slides()) != 1 || len(s.Frames()) != 1 {
		t.Error("source document changed")
	}
}

func TestDraftAppendTo(t *testing.T) {
	dr, err := NewDraft("Title", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewDraft: %v", err)
	}
	f, err := dr.AddTable(1, 2, 0, 0, units.Cm(2), units.Cm(1))
	if err != nil {
		t.Fatalf("AddTable: %v", err)
	}
	setText(t, f, 0, 1, "draft")
	if dr.LayoutName() != "Title" || len(dr.Frames()) != 1 || dr.Slide().Document() == nil {
		t.Error("draft state")
	}

	d := newDoc(t, "Blank", "Title")
	s, err := dr.AppendTo(d)
	if err != nil {
		t.Fatalf("AppendTo: %v", err)
	}
	if s.LayoutName() != "Title" || cellText(t, s.Frames()[0], 0, 1) != "draft" {
		t.Error("draft not appended")
	}
	// draft stays usable and can be appended again
	if _, err := dr.AppendTo(d); err != nil || len(d.Slides()) != 2 {
		t.Errorf("second AppendTo: %v", err)
	}
}

func TestWriteRead(t *testing.T) {
	d := newDoc(t, "Title", "Blank")
	s := newSlide(t, d, "Blank")
	f, _ := s.AddTableSized(units.Cm(1), units.Cm(2), []units.Length{units.Cm(1), units.Cm(2)}, []units.Length{units.Mm(7)})
	setText(t, f, 0, 0, "one\ntwo")
	newSlide(t, d, "Title")

	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(bytes.NewReader(buf.Bytes()), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.ID != d.ID || len(got.Slides()) != 2 {
		t.Fatalf("read %v with %d slides", got.ID, len(got.Slides()))
	}
	gs, _ := got.Slide(0)
	if gs.LayoutName() != "Blank" {
		t.Errorf("layout %q", gs.LayoutName())
	}
	gf, err := gs.Frame(f.Name)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if gf.ID != f.ID || gf.Bounds() != f.Bounds() {
		t.Errorf("frame %v %+v, want %v %+v", gf.ID, gf.Bounds(), f.ID, f.Bounds())
	}
	if diff := cmp.Diff([]string{"one", "two"}, mustParagraphs(t, gf)); diff != "" {
		t.Errorf("paragraphs (-want +got):\n%s", diff)
	}

	var again bytes.Buffer
	if err := got.Write(&again); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if again.String() != buf.String() {
		t.Error("second write differs")
	}
}

func mustParagraphs(t *testing.T, f *Frame) []string {
	t.Helper()

	c, err := f.Table().Cell(0, 0)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	return c.Paragraphs()
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"wrong root", `<slides/>`},
		{"no layouts", `<deck><layouts/></deck>`},
		{"unknown layout", `<deck><layouts><layout name="A"/></layouts><slide layout="B"/></deck>`},
		{"frame without table", `<deck><layouts><layout name="A"/></layouts><slide layout="A"><frame name="t"/></slide></deck>`},
		{"bad position", `<deck><layouts><layout name="A"/></layouts><slide layout="A"><frame x="left"><tbl/></frame></slide></deck>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(bytes.NewReader([]byte(tt.xml)), nil); !errors.Is(err, ErrBadDeck) {
				t.Errorf("Read error = %v, want ErrBadDeck", err)
			}
		})
	}

	broken := `<deck><layouts><layout name="A"/></layouts><slide layout="A"><frame><tbl><tblGrid/></tbl></frame></slide></deck>`
	if _, err := Read(bytes.NewReader([]byte(broken)), nil); !errors.Is(err, table.ErrInvalidGrid) {
		t.Errorf("broken table: %v", err)
	}
}
