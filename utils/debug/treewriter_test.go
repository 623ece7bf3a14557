package debug

import (
	"testing"

	"gridkit/grid"
	"gridkit/units"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "%s = %d", []any{"count", 5}, "  count = 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		depth        int
		label, value string
		want         string
	}{
		{0, "field", "", "field: \n"},
		{1, "content", "test", "  content: \"test\"\n"},
		{0, "quoted", "he said \"hello\"", "quoted: \"he said \\\"hello\\\"\"\n"},
		{0, "multiline", "line1\nline2", "multiline: \"line1\\nline2\"\n"},
	}
	for _, tt := range tests {
		tw := NewTreeWriter()
		tw.TextBlock(tt.depth, tt.label, tt.value)
		if got := tw.String(); got != tt.want {
			t.Errorf("TextBlock(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestTreeWriter_Grid(t *testing.T) {
	a := grid.NewArena()
	row := a.New(grid.KindRow)
	a.Node(row).Extent = units.Emu(100)
	origin := a.New(grid.KindCell)
	n := a.Node(origin)
	n.ColSpan = 2
	n.Paragraphs = []string{"hello"}
	spanned := a.New(grid.KindCell)
	a.Node(spanned).HMerge = true
	for _, c := range []grid.NodeID{origin, spanned} {
		if err := a.Append(row, c); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	a.Node(row).Attrs = map[string]string{"b": "2", "a": "1"}

	tw := NewTreeWriter()
	tw.Grid(a, row, 0)
	want := "row #0 extent=100 a=1 b=2\n" +
		"  cell #1 span=1x2\n" +
		"    p: \"hello\"\n" +
		"  cell #2 hMerge\n"
	if got := tw.String(); got != want {
		t.Errorf("Grid() =\n%s\nwant\n%s", got, want)
	}

	tw = NewTreeWriter()
	tw.Grid(a, 42, 1)
	if got := tw.String(); got != "  <invalid node 42>\n" {
		t.Errorf("Grid() on invalid node = %q", got)
	}
}
