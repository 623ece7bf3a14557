// Package grid implements the ordered node tree tables are built from.
//
// Nodes live in an Arena and are addressed by NodeID. Identity of a node is
// its id: two handles refer to the same row or cell exactly when their ids
// are equal. Removing a node detaches it from its parent but never reuses its
// id, so handles held by callers stay unambiguous.
package grid

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"gridkit/units"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidNode     = errors.New("invalid node")
	ErrAttached        = errors.New("node already has a parent")
	ErrCycle           = errors.New("node cannot become its own descendant")
)

// NodeID addresses a node inside its Arena.
type NodeID int

// None is the id of a missing node.
const None NodeID = -1

// Kind tells what part of a table a node represents.
type Kind uint8

const (
	KindTable Kind = iota
	KindGrid
	KindGridCol
	KindRow
	KindCell
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindGrid:
		return "grid"
	case KindGridCol:
		return "gridCol"
	case KindRow:
		return "row"
	case KindCell:
		return "cell"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Node is a single element of the tree. Fields meaningful for one kind are
// ignored for others.
type Node struct {
	Kind Kind

	// Extent is width for KindGridCol and height for KindRow.
	Extent units.Length

	// Cell span state.
	RowSpan int
	ColSpan int
	HMerge  bool
	VMerge  bool

	// Paragraphs is opaque cell content.
	Paragraphs []string

	// Attrs holds table level properties.
	Attrs map[string]string

	parent   NodeID
	children []NodeID
}

// Arena owns nodes of one or more trees.
type Arena struct {
	nodes []Node
}

func NewArena() *Arena {
	return &Arena{}
}

// New allocates detached node of the requested kind. Cells start with span 1.
func (a *Arena) New(kind Kind) NodeID {
	n := Node{Kind: kind, parent: None}
	if kind == KindCell {
		n.RowSpan, n.ColSpan = 1, 1
	}
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

// Len returns number of nodes ever allocated, including detached ones.
func (a *Arena) Len() int {
	return len(a.nodes)
}

func (a *Arena) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

// Node returns pointer to node data or nil for invalid id. Pointer is only
// good until the next allocation in this arena.
func (a *Arena) Node(id NodeID) *Node {
	if !a.Valid(id) {
		return nil
	}
	return &a.nodes[id]
}

func (a *Arena) Parent(id NodeID) NodeID {
	if !a.Valid(id) {
		return None
	}
	return a.nodes[id].parent
}

// Children returns copy of child list.
func (a *Arena) Children(id NodeID) []NodeID {
	if !a.Valid(id) {
		return nil
	}
	return slices.Clone(a.nodes[id].children)
}

func (a *Arena) ChildCount(id NodeID) int {
	if !a.Valid(id) {
		return 0
	}
	return len(a.nodes[id].children)
}

func (a *Arena) Child(id NodeID, i int) (NodeID, error) {
	if !a.Valid(id) {
		return None, fmt.Errorf("node %d: %w", id, ErrInvalidNode)
	}
	ch := a.nodes[id].children
	if i < 0 || i >= len(ch) {
		return None, fmt.Errorf("child %d of %d: %w", i, len(ch), ErrIndexOutOfRange)
	}
	return ch[i], nil
}

// IndexOf returns position of node among its siblings or -1 when detached.
func (a *Arena) IndexOf(id NodeID) int {
	p := a.Parent(id)
	if p == None {
		return -1
	}
	return slices.Index(a.nodes[p].children, id)
}

// NextSibling returns the node following id under the same parent or None.
func (a *Arena) NextSibling(id NodeID) NodeID {
	i := a.IndexOf(id)
	if i < 0 {
		return None
	}
	ch := a.nodes[a.nodes[id].parent].children
	if i+1 >= len(ch) {
		return None
	}
	return ch[i+1]
}

func (a *Arena) Append(parent, child NodeID) error {
	return a.Insert(parent, a.ChildCount(parent), child)
}

// Insert puts detached child at position i (0..len) of parent children.
func (a *Arena) Insert(parent NodeID, i int, child NodeID) error {
	if !a.Valid(parent) || !a.Valid(child) {
		return fmt.Errorf("insert %d into %d: %w", child, parent, ErrInvalidNode)
	}
	if a.nodes[child].parent != None {
		return fmt.Errorf("insert %d into %d: %w", child, parent, ErrAttached)
	}
	for p := parent; p != None; p = a.nodes[p].parent {
		if p == child {
			return fmt.Errorf("insert %d into %d: %w", child, parent, ErrCycle)
		}
	}
	ch := a.nodes[parent].children
	if i < 0 || i > len(ch) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(ch), ErrIndexOutOfRange)
	}
	a.nodes[parent].children = slices.Insert(ch, i, child)
	a.nodes[child].parent = parent
	return nil
}

// Remove detaches node (with its subtree) from its parent. Removing detached
// node is a no-op.
func (a *Arena) Remove(id NodeID) error {
	if !a.Valid(id) {
		return fmt.Errorf("remove %d: %w", id, ErrInvalidNode)
	}
	p := a.nodes[id].parent
	if p == None {
		return nil
	}
	i := slices.Index(a.nodes[p].children, id)
	a.nodes[p].children = slices.Delete(a.nodes[p].children, i, i+1)
	a.nodes[id].parent = None
	return nil
}

// CloneSubtree copies subtree rooted at root in src (which may be a itself)
// into a. Copies get fresh ids, share no slices or maps with originals and
// have their parent links remapped. Returned root is detached.
func (a *Arena) CloneSubtree(src *Arena, root NodeID) (NodeID, error) {
	if !src.Valid(root) {
		return None, fmt.Errorf("clone %d: %w", root, ErrInvalidNode)
	}

	type pending struct {
		from NodeID
		to   NodeID
	}

	newRoot := a.cloneNode(src, root)
	stack := []pending{{root, newRoot}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// src children are read before any append to a may move src.nodes
		kids := slices.Clone(src.nodes[top.from].children)
		copies := make([]NodeID, len(kids))
		for i, k := range kids {
			copies[i] = a.cloneNode(src, k)
			a.nodes[copies[i]].parent = top.to
			stack = append(stack, pending{k, copies[i]})
		}
		a.nodes[top.to].children = copies
	}
	return newRoot, nil
}

func (a *Arena) cloneNode(src *Arena, id NodeID) NodeID {
	n := src.nodes[id]
	n.parent = None
	n.children = nil
	n.Paragraphs = slices.Clone(n.Paragraphs)
	if n.Attrs != nil {
		n.Attrs = maps.Clone(n.Attrs)
	}
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

// Walk visits subtree rooted at id depth first, parents before children,
// stopping early when fn returns false.
func (a *Arena) Walk(id NodeID, fn func(NodeID) bool) {
	var walk func(NodeID) bool
	walk = func(n NodeID) bool {
		if !fn(n) {
			return false
		}
		for _, c := range a.nodes[n].children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	if a.Valid(id) {
		walk(id)
	}
}
