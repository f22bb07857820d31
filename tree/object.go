package tree

import (
	"fmt"
	"iter"
	"slices"
)

// ObjectTree is a container whose children are named. Entries keep their
// insertion order, keys[i] names values[i].
type ObjectTree struct {
	containerBase
	keys   []string
	values []Node
}

func NewObject(opts ...Option) *ObjectTree {
	return &ObjectTree{containerBase: containerBase{nodeBase: newBase(buildOptions(opts))}}
}

func (o *ObjectTree) Type() Type        { return ObjectType }
func (o *ObjectTree) Value() any        { return o }
func (o *ObjectTree) Height() int       { return containerHeight(o) }
func (o *ObjectTree) Styles() Styles    { return stylesFor(o.Height()) }
func (o *ObjectTree) Key() (Key, error) { return keyOf(o) }
func (o *ObjectTree) Len() int          { return len(o.values) }

func (o *ObjectTree) ToJSON() any {
	res := make(map[string]any, len(o.keys))
	for i, k := range o.keys {
		res[k] = o.values[i].ToJSON()
	}
	return res
}

func (o *ObjectTree) Children() []Node {
	return slices.Clone(o.values)
}

func (o *ObjectTree) Keys() []string {
	return slices.Clone(o.keys)
}

// All iterates the entries in order. The object must not be mutated during
// iteration.
func (o *ObjectTree) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for i, k := range o.keys {
			if !yield(k, o.values[i]) {
				return
			}
		}
	}
}

func (o *ObjectTree) index(key string) int {
	return slices.Index(o.keys, key)
}

func (o *ObjectTree) Get(key string) (Node, bool) {
	i := o.index(key)
	if i == -1 {
		return nil, false
	}
	return o.values[i], true
}

func (o *ObjectTree) Has(key string) bool {
	return o.index(key) != -1
}

// Set stores n under key. An existing entry is replaced in place and
// returned; otherwise n is appended.
func (o *ObjectTree) Set(key string, n Node) (Node, error) {
	i := o.index(key)
	if i == -1 {
		return nil, o.Insert(len(o.keys), key, n)
	}
	old := o.values[i]
	if old == n {
		return nil, nil
	}
	if err := checkInsert(o, n); err != nil {
		return nil, err
	}
	o.values[i] = n
	n.base().parent = o
	return old, nil
}

// Insert adds a new entry at position at, 0 <= at <= Len().
func (o *ObjectTree) Insert(at int, key string, n Node) error {
	if o.Has(key) {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	if at < 0 || at > len(o.keys) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexRange, at, len(o.keys))
	}
	if err := checkInsert(o, n); err != nil {
		return err
	}
	o.keys = slices.Insert(o.keys, at, key)
	o.values = slices.Insert(o.values, at, n)
	n.base().parent = o
	return nil
}

// Delete removes the entry named key and returns its node. The removed node
// keeps its parent link, so its Key fails with ErrInconsistentTree.
func (o *ObjectTree) Delete(key string) (Node, error) {
	i := o.index(key)
	if i == -1 {
		return nil, fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	n := o.values[i]
	o.keys = slices.Delete(o.keys, i, i+1)
	o.values = slices.Delete(o.values, i, i+1)
	return n, nil
}

// Rename changes the name of an entry, keeping its position and node.
func (o *ObjectTree) Rename(from, to string) error {
	i := o.index(from)
	if i == -1 {
		return fmt.Errorf("%w: key %q", ErrNotFound, from)
	}
	if from == to {
		return nil
	}
	if o.Has(to) {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, to)
	}
	o.keys[i] = to
	return nil
}

// Move puts the entry named key at position to, 0 <= to < Len(). The other
// entries keep their relative order.
func (o *ObjectTree) Move(key string, to int) error {
	i := o.index(key)
	if i == -1 {
		return fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	if to < 0 || to >= len(o.keys) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexRange, to, len(o.keys))
	}
	n := o.values[i]
	o.keys = slices.Insert(slices.Delete(o.keys, i, i+1), to, key)
	o.values = slices.Insert(slices.Delete(o.values, i, i+1), to, n)
	return nil
}

func (o *ObjectTree) keyOf(child Node) (Key, bool) {
	for i, v := range o.values {
		if v == child {
			return FieldKey(o.keys[i]), true
		}
	}
	return Key{}, false
}

func (o *ObjectTree) replaceChild(old, n Node) error {
	k, ok := o.keyOf(old)
	if !ok {
		return fmt.Errorf("%w: node %s, parent %s", ErrInconsistentTree, old.ID(), o.ID())
	}
	_, err := o.Set(k.Field(), n)
	return err
}

func (o *ObjectTree) removeChild(n Node) error {
	k, ok := o.keyOf(n)
	if !ok {
		return fmt.Errorf("%w: node %s, parent %s", ErrInconsistentTree, n.ID(), o.ID())
	}
	_, err := o.Delete(k.Field())
	return err
}
