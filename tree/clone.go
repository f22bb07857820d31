package tree

// Clone deep copies n with fresh identifiers. The copy has no parent and is
// not selected; containers keep their open state.
func Clone(n Node, opts ...Option) Node {
	return clone(n, buildOptions(opts))
}

func clone(n Node, o *options) Node {
	switch x := n.(type) {
	case *Leaf:
		return &Leaf{nodeBase: newBase(o), typ: x.typ, v: x.v}
	case *ObjectTree:
		res := &ObjectTree{containerBase: containerBase{nodeBase: newBase(o), closed: x.closed}}
		res.keys = append([]string(nil), x.keys...)
		res.values = make([]Node, len(x.values))
		for i, v := range x.values {
			c := clone(v, o)
			c.base().parent = res
			res.values[i] = c
		}
		return res
	case *ArrayTree:
		res := &ArrayTree{containerBase: containerBase{nodeBase: newBase(o), closed: x.closed}}
		res.values = make([]Node, len(x.values))
		for i, v := range x.values {
			c := clone(v, o)
			c.base().parent = res
			res.values[i] = c
		}
		return res
	}
	return nil
}
