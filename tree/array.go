package tree

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayTree is a container whose children are keyed by position.
type ArrayTree struct {
	containerBase
	values []Node
}

func NewArray(opts ...Option) *ArrayTree {
	return &ArrayTree{containerBase: containerBase{nodeBase: newBase(buildOptions(opts))}}
}

func (a *ArrayTree) Type() Type        { return ArrayType }
func (a *ArrayTree) Value() any        { return a }
func (a *ArrayTree) Height() int       { return containerHeight(a) }
func (a *ArrayTree) Styles() Styles    { return stylesFor(a.Height()) }
func (a *ArrayTree) Key() (Key, error) { return keyOf(a) }
func (a *ArrayTree) Len() int          { return len(a.values) }

func (a *ArrayTree) ToJSON() any {
	res := make([]any, len(a.values))
	for i, v := range a.values {
		res[i] = v.ToJSON()
	}
	return res
}

func (a *ArrayTree) Children() []Node {
	return slices.Clone(a.values)
}

// All iterates the children in order. The array must not be mutated during
// iteration.
func (a *ArrayTree) All() iter.Seq2[int, Node] {
	return slices.All(a.values)
}

func (a *ArrayTree) At(i int) (Node, bool) {
	if i < 0 || i >= len(a.values) {
		return nil, false
	}
	return a.values[i], true
}

func (a *ArrayTree) checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexRange, i, len(a.values))
	}
	return nil
}

// Append adds ns at the end. Either all of ns are added or, on error, none.
func (a *ArrayTree) Append(ns ...Node) error {
	for i, n := range ns {
		if err := checkInsert(a, n); err != nil {
			return err
		}
		if slices.Contains(ns[:i], n) {
			return fmt.Errorf("%w: node %s given twice", ErrAttached, n.ID())
		}
	}
	for _, n := range ns {
		a.values = append(a.values, n)
		n.base().parent = a
	}
	return nil
}

// Insert puts n at index i, 0 <= i <= Len(), shifting later children.
func (a *ArrayTree) Insert(i int, n Node) error {
	if err := a.checkIndex(i, len(a.values)+1); err != nil {
		return err
	}
	if err := checkInsert(a, n); err != nil {
		return err
	}
	a.values = slices.Insert(a.values, i, n)
	n.base().parent = a
	return nil
}

// Remove takes out the child at index i and returns it. The removed node
// keeps its parent link, so its Key fails with ErrInconsistentTree.
func (a *ArrayTree) Remove(i int) (Node, error) {
	if err := a.checkIndex(i, len(a.values)); err != nil {
		return nil, err
	}
	n := a.values[i]
	a.values = slices.Delete(a.values, i, i+1)
	return n, nil
}

// Replace puts n at index i and returns the node it replaced.
func (a *ArrayTree) Replace(i int, n Node) (Node, error) {
	if err := a.checkIndex(i, len(a.values)); err != nil {
		return nil, err
	}
	old := a.values[i]
	if old == n {
		return nil, nil
	}
	if err := checkInsert(a, n); err != nil {
		return nil, err
	}
	a.values[i] = n
	n.base().parent = a
	return old, nil
}

func (a *ArrayTree) Swap(i, j int) error {
	if err := a.checkIndex(i, len(a.values)); err != nil {
		return err
	}
	if err := a.checkIndex(j, len(a.values)); err != nil {
		return err
	}
	a.values[i], a.values[j] = a.values[j], a.values[i]
	return nil
}

// Move puts the child at index from at index to. The other children keep
// their relative order.
func (a *ArrayTree) Move(from, to int) error {
	if err := a.checkIndex(from, len(a.values)); err != nil {
		return err
	}
	if err := a.checkIndex(to, len(a.values)); err != nil {
		return err
	}
	n := a.values[from]
	a.values = slices.Insert(slices.Delete(a.values, from, from+1), to, n)
	return nil
}

func (a *ArrayTree) keyOf(child Node) (Key, bool) {
	i := slices.Index(a.values, child)
	if i == -1 {
		return Key{}, false
	}
	return IndexKey(i), true
}

func (a *ArrayTree) replaceChild(old, n Node) error {
	k, ok := a.keyOf(old)
	if !ok {
		return fmt.Errorf("%w: node %s, parent %s", ErrInconsistentTree, old.ID(), a.ID())
	}
	_, err := a.Replace(k.Index(), n)
	return err
}

func (a *ArrayTree) removeChild(n Node) error {
	k, ok := a.keyOf(n)
	if !ok {
		return fmt.Errorf("%w: node %s, parent %s", ErrInconsistentTree, n.ID(), a.ID())
	}
	_, err := a.Remove(k.Index())
	return err
}
