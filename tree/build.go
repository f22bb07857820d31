package tree

import (
	"fmt"
	"maps"
	"slices"
)

// Member is one named value of an object given in document order.
type Member struct {
	Key   string
	Value any
}

// Members is an object whose member order is significant. FromAny builds an
// ObjectTree from it keeping that order.
type Members []Member

// FromAny wraps a JSON compatible value recursively. Objects are given as
// map[string]any, whose keys are sorted, or as Members; arrays as []any.
func FromAny(v any, opts ...Option) (Node, error) {
	return fromAny(v, buildOptions(opts))
}

func fromAny(v any, o *options) (Node, error) {
	switch x := v.(type) {
	case map[string]any:
		res := &ObjectTree{containerBase: containerBase{nodeBase: newBase(o)}}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := res.addAny(k, x[k], o); err != nil {
				return nil, err
			}
		}
		return res, nil
	case Members:
		return fromMembers(x, o)
	case []Member:
		return fromMembers(x, o)
	case []any:
		res := &ArrayTree{containerBase: containerBase{nodeBase: newBase(o)}}
		res.values = make([]Node, 0, len(x))
		for i, elt := range x {
			child, err := fromAny(elt, o)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			child.base().parent = res
			res.values = append(res.values, child)
		}
		return res, nil
	}
	t, err := leafType(v)
	if err != nil {
		return nil, err
	}
	return &Leaf{nodeBase: newBase(o), typ: t, v: v}, nil
}

func fromMembers(ms []Member, o *options) (*ObjectTree, error) {
	res := &ObjectTree{containerBase: containerBase{nodeBase: newBase(o)}}
	for _, m := range ms {
		if res.Has(m.Key) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, m.Key)
		}
		if err := res.addAny(m.Key, m.Value, o); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (o *ObjectTree) addAny(k string, v any, opts *options) error {
	child, err := fromAny(v, opts)
	if err != nil {
		return fmt.Errorf(".%s: %w", k, err)
	}
	child.base().parent = o
	o.keys = append(o.keys, k)
	o.values = append(o.values, child)
	return nil
}
