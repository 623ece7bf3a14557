package table

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"gridkit/grid"
	"gridkit/units"
)

// Element names follow DrawingML table markup.
const (
	tagTable   = "tbl"
	tagProps   = "tblPr"
	tagGrid    = "tblGrid"
	tagGridCol = "gridCol"
	tagRow     = "tr"
	tagCell    = "tc"
	tagPara    = "p"
)

// Element renders table as markup tree.
func (t *Table) Element() *etree.Element {
	el := etree.NewElement(tagTable)

	props := el.CreateElement(tagProps)
	for _, f := range Flags {
		if t.Flag(f) {
			props.CreateAttr(string(f), "1")
		}
	}

	g := el.CreateElement(tagGrid)
	for _, w := range t.Widths() {
		g.CreateElement(tagGridCol).CreateAttr("w", w.String())
	}

	for _, rowID := range t.rowIDs() {
		tr := el.CreateElement(tagRow)
		tr.CreateAttr("h", t.arena.Node(rowID).Extent.String())
		for _, id := range t.arena.Children(rowID) {
			n := t.arena.Node(id)
			tc := tr.CreateElement(tagCell)
			if n.RowSpan > 1 {
				tc.CreateAttr("rowSpan", strconv.Itoa(n.RowSpan))
			}
			if n.ColSpan > 1 {
				tc.CreateAttr("gridSpan", strconv.Itoa(n.ColSpan))
			}
			if n.HMerge {
				tc.CreateAttr("hMerge", "1")
			}
			if n.VMerge {
				tc.CreateAttr("vMerge", "1")
			}
			for _, p := range n.Paragraphs {
				tc.CreateElement(tagPara).SetText(p)
			}
		}
	}
	return el
}

// Decode builds table owned by region from markup produced by Element.
// Resulting grid is validated.
func Decode(el *etree.Element, region Region, log *zap.Logger) (*Table, error) {
	if el == nil || el.Tag != tagTable {
		return nil, fmt.Errorf("not a table element: %w", ErrInvalidGrid)
	}

	a := grid.NewArena()
	root := a.New(grid.KindTable)
	g := a.New(grid.KindGrid)
	mustAttach(a.Append(root, g))

	if props := el.SelectElement(tagProps); props != nil {
		for _, f := range Flags {
			if v := props.SelectAttrValue(string(f), ""); v == "1" || v == "true" {
				n := a.Node(root)
				if n.Attrs == nil {
					n.Attrs = make(map[string]string)
				}
				n.Attrs[string(f)] = "1"
			}
		}
	}

	gridEl := el.SelectElement(tagGrid)
	if gridEl == nil {
		return nil, fmt.Errorf("table has no %s: %w", tagGrid, ErrInvalidGrid)
	}
	for i, gc := range gridEl.SelectElements(tagGridCol) {
		w, err := lengthAttr(gc, "w")
		if err != nil {
			return nil, fmt.Errorf("grid column %d: %w", i, err)
		}
		id := a.New(grid.KindGridCol)
		a.Node(id).Extent = w
		mustAttach(a.Append(g, id))
	}

	trs := el.SelectElements(tagRow)
	ncols := len(a.Children(g))
	for i, tr := range trs {
		h, err := lengthAttr(tr, "h")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		row := a.New(grid.KindRow)
		a.Node(row).Extent = h
		mustAttach(a.Append(root, row))
		for j, tc := range tr.SelectElements(tagCell) {
			id := a.New(grid.KindCell)
			n := a.Node(id)
			if n.RowSpan, err = spanAttr(tc, "rowSpan", len(trs)); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			if n.ColSpan, err = spanAttr(tc, "gridSpan", ncols); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			n.HMerge = boolAttr(tc, "hMerge")
			n.VMerge = boolAttr(tc, "vMerge")
			for _, p := range tc.SelectElements(tagPara) {
				n.Paragraphs = append(n.Paragraphs, p.Text())
			}
			mustAttach(a.Append(row, id))
		}
	}

	t := attach(a, root, region, log)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.notify()
	return t, nil
}

func lengthAttr(el *etree.Element, name string) (units.Length, error) {
	raw := el.SelectAttrValue(name, "")
	if raw == "" {
		return 0, fmt.Errorf("missing attribute %q: %w", name, ErrInvalidGrid)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return units.Length(v), nil
}

// spanAttr reads span attribute, absent one means 1. Span can never be longer
// than the table side it runs along.
func spanAttr(el *etree.Element, name string, limit int) (int, error) {
	raw := el.SelectAttrValue(name, "")
	if raw == "" {
		return 1, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	if v < 1 || v > limit {
		return 0, fmt.Errorf("attribute %q: span %d outside 1..%d: %w", name, v, limit, ErrInvalidGrid)
	}
	return v, nil
}

func boolAttr(el *etree.Element, name string) bool {
	v := el.SelectAttrValue(name, "")
	return v == "1" || v == "true"
}
