package tree

import (
	"fmt"
	"strconv"
)

// Key is a node's position within its parent: a field name for children of
// an ObjectTree, an index for children of an ArrayTree.
type Key struct {
	field   string
	index   int
	isIndex bool
}

func FieldKey(f string) Key { return Key{field: f} }
func IndexKey(i int) Key    { return Key{index: i, isIndex: true} }

func (k Key) IsIndex() bool { return k.isIndex }
func (k Key) Field() string { return k.field }
func (k Key) Index() int    { return k.index }

// Value returns the key as a string or an int.
func (k Key) Value() any {
	if k.isIndex {
		return k.index
	}
	return k.field
}

func (k Key) String() string {
	if k.isIndex {
		return strconv.Itoa(k.index)
	}
	return k.field
}

func keyOf(n Node) (Key, error) {
	p := n.Parent()
	if p == nil {
		return Key{}, fmt.Errorf("%w: node %s", ErrNoParent, n.ID())
	}
	k, ok := p.keyOf(n)
	if !ok {
		return Key{}, fmt.Errorf("%w: node %s, parent %s", ErrInconsistentTree, n.ID(), p.ID())
	}
	return k, nil
}

// MustKey is like n.Key() but panics on failure.
func MustKey(n Node) Key {
	k, err := n.Key()
	if err != nil {
		panic(err)
	}
	return k
}

// Attached reports whether n is currently one of its parent's children.
// Roots are never attached.
func Attached(n Node) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	_, ok := p.keyOf(n)
	return ok
}
