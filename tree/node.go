package tree

import (
	"fmt"
	"strconv"
)

// RowHeight is the pixel height of one rendered tree row.
const RowHeight = 19

// Node is one value of an edited document: a *Leaf, an *ObjectTree or an
// *ArrayTree.
type Node interface {
	ID() string
	Type() Type
	// Value returns the primitive of a leaf, or the live container itself.
	Value() any
	ToJSON() any
	MarshalJSON() ([]byte, error)

	Parent() Container
	Key() (Key, error)

	Height() int
	Styles() Styles
	Selected() bool
	SetSelected(bool)

	base() *nodeBase
}

// Container is a node owning an ordered collection of children.
type Container interface {
	Node
	Len() int
	Children() []Node
	Open() bool
	SetOpen(bool)

	keyOf(child Node) (Key, bool)
	replaceChild(old, n Node) error
	removeChild(n Node) error
}

type Styles struct {
	ContentVisibility    string `json:"contentVisibility"`
	ContainIntrinsicSize string `json:"containIntrinsicSize"`
}

func stylesFor(height int) Styles {
	return Styles{
		ContentVisibility:    "auto",
		ContainIntrinsicSize: strconv.Itoa(height) + "px",
	}
}

type nodeBase struct {
	id       string
	parent   Container
	selected bool
}

func newBase(o *options) nodeBase {
	return nodeBase{id: o.ids()}
}

func (b *nodeBase) ID() string         { return b.id }
func (b *nodeBase) Parent() Container  { return b.parent }
func (b *nodeBase) Selected() bool     { return b.selected }
func (b *nodeBase) SetSelected(v bool) { b.selected = v }
func (b *nodeBase) base() *nodeBase    { return b }

type containerBase struct {
	nodeBase
	closed bool
}

func (c *containerBase) Open() bool     { return !c.closed }
func (c *containerBase) SetOpen(v bool) { c.closed = !v }

func containerHeight(c Container) int {
	h := RowHeight
	if !c.Open() {
		return h
	}
	for _, child := range c.Children() {
		h += child.Height()
	}
	return h
}

func isNil(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Leaf:
		return x == nil
	case *ObjectTree:
		return x == nil
	case *ArrayTree:
		return x == nil
	}
	return false
}

// checkInsert reports whether n may become a child of parent.
func checkInsert(parent Container, n Node) error {
	if isNil(n) {
		return ErrNilNode
	}
	if Attached(n) {
		k, _ := n.Key()
		return fmt.Errorf("%w: node %s at %q of %s", ErrAttached, n.ID(), k, n.Parent().ID())
	}
	if _, ok := n.(Container); !ok {
		return nil
	}
	for a := parent; a != nil; a = a.Parent() {
		if Node(a) == n {
			return fmt.Errorf("%w: %s", ErrCycle, n.ID())
		}
		if !Attached(a) {
			break
		}
	}
	return nil
}
