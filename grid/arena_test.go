package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildRow(t *testing.T, a *Arena, cells int) NodeID {
	t.Helper()

	row := a.New(KindRow)
	for range cells {
		if err := a.Append(row, a.New(KindCell)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return row
}

func TestInsertRemoveSiblings(t *testing.T) {
	a := NewArena()
	row := buildRow(t, a, 3)
	kids := a.Children(row)

	extra := a.New(KindCell)
	if err := a.Insert(row, 1, extra); err != nil {
		t.Fatalf("insert: %v", err)
	}
	want := []NodeID{kids[0], extra, kids[1], kids[2]}
	if diff := cmp.Diff(want, a.Children(row)); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	if got := a.NextSibling(kids[0]); got != extra {
		t.Errorf("NextSibling = %d, want %d", got, extra)
	}
	if got := a.NextSibling(kids[2]); got != None {
		t.Errorf("NextSibling of last = %d, want None", got)
	}
	if got := a.IndexOf(kids[2]); got != 3 {
		t.Errorf("IndexOf = %d, want 3", got)
	}

	if err := a.Remove(extra); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if a.Parent(extra) != None || a.IndexOf(extra) != -1 {
		t.Error("removed node must be detached")
	}
	if diff := cmp.Diff(kids, a.Children(row)); diff != "" {
		t.Fatalf("children after remove (-want +got):\n%s", diff)
	}
}

func TestInsertErrors(t *testing.T) {
	a := NewArena()
	row := buildRow(t, a, 2)
	first, _ := a.Child(row, 0)

	if err := a.Insert(row, 5, a.New(KindCell)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("insert past end: %v", err)
	}
	if err := a.Append(row, first); !errors.Is(err, ErrAttached) {
		t.Errorf("double attach: %v", err)
	}
	tbl := a.New(KindTable)
	if err := a.Remove(tbl); err != nil {
		t.Errorf("removing detached node: %v", err)
	}
	if _, err := a.Child(row, 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("child out of range: %v", err)
	}
	if _, err := a.Child(NodeID(100), 0); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("invalid node: %v", err)
	}
}

func TestInsertCycle(t *testing.T) {
	a := NewArena()
	tbl := a.New(KindTable)
	row := a.New(KindRow)
	if err := a.Append(tbl, row); err != nil {
		t.Fatalf("append: %v", err)
	}
	other := a.New(KindTable)
	if err := a.Append(row, other); err != nil {
		t.Fatalf("append: %v", err)
	}
	// tbl is detached root, putting it under its own grandchild must fail
	if err := a.Append(other, tbl); !errors.Is(err, ErrCycle) {
		t.Errorf("cycle: %v", err)
	}
}

func TestCloneSubtree(t *testing.T) {
	src := NewArena()
	row := buildRow(t, src, 2)
	src.Node(row).Extent = 42
	first, _ := src.Child(row, 0)
	src.Node(first).Paragraphs = []string{"a", "b"}
	src.Node(first).ColSpan = 2

	for name, dst := range map[string]*Arena{"same arena": src, "other arena": NewArena()} {
		t.Run(name, func(t *testing.T) {
			cp, err := dst.CloneSubtree(src, row)
			if err != nil {
				t.Fatalf("clone: %v", err)
			}
			if dst.Parent(cp) != None {
				t.Error("clone root must be detached")
			}
			if dst.Node(cp).Extent != 42 {
				t.Errorf("extent = %d", dst.Node(cp).Extent)
			}
			kids := dst.Children(cp)
			if len(kids) != 2 {
				t.Fatalf("clone has %d children", len(kids))
			}
			for _, k := range kids {
				if dst == src && (k == first || k == row) {
					t.Fatalf("clone shares id %d with original", k)
				}
				if dst.Parent(k) != cp {
					t.Errorf("child %d parent = %d, want %d", k, dst.Parent(k), cp)
				}
			}
			c := dst.Node(kids[0])
			if diff := cmp.Diff([]string{"a", "b"}, c.Paragraphs); diff != "" {
				t.Errorf("paragraphs (-want +got):\n%s", diff)
			}
			c.Paragraphs[0] = "changed"
			if src.Node(first).Paragraphs[0] != "a" {
				t.Error("clone shares paragraph storage with original")
			}
			if c.ColSpan != 2 || c.RowSpan != 1 {
				t.Errorf("span = %dx%d", c.RowSpan, c.ColSpan)
			}
		})
	}
}

func TestWalkStops(t *testing.T) {
	a := NewArena()
	row := buildRow(t, a, 4)
	var seen int
	a.Walk(row, func(id NodeID) bool {
		seen++
		return seen < 3
	})
	if seen != 3 {
		t.Errorf("visited %d nodes, want 3", seen)
	}
}
