package tree

import (
	"cmp"
	"encoding/json"
	"math/big"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Objects compare their entries in order.
func Compare(a, b Node) int {
	if a == b {
		return 0
	}
	if isNil(a) {
		return -1
	}
	if isNil(b) {
		return 1
	}
	if c := cmp.Compare(rank(a.Type()), rank(b.Type())); c != 0 {
		return c
	}
	switch x := a.(type) {
	case *Leaf:
		return compareLeaves(x, b.(*Leaf))
	case *ArrayTree:
		return compareArrays(x, b.(*ArrayTree))
	case *ObjectTree:
		return compareObjects(x, b.(*ObjectTree))
	}
	return 0
}

// Equal reports whether a and b hold the same JSON value. Unlike Compare,
// object member order does not matter.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case *Leaf:
		return compareLeaves(x, b.(*Leaf)) == 0
	case *ArrayTree:
		y := b.(*ArrayTree)
		if x.Len() != y.Len() {
			return false
		}
		for i, v := range x.values {
			if !Equal(v, y.values[i]) {
				return false
			}
		}
		return true
	case *ObjectTree:
		y := b.(*ObjectTree)
		if x.Len() != y.Len() {
			return false
		}
		for k, v := range x.All() {
			w, ok := y.Get(k)
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareLeaves(a, b *Leaf) int {
	switch a.typ {
	case BoolType:
		x, y := a.v.(bool), b.v.(bool)
		if x == y {
			return 0
		}
		if !x {
			return -1
		}
		return 1
	case StringType:
		return strings.Compare(a.v.(string), b.v.(string))
	case NumberType:
		return numberRat(a.v).Cmp(numberRat(b.v))
	}
	return 0
}

// numberRat converts any number a leaf may hold to an exact rational so
// that 1, 1.0 and json.Number("1e0") compare equal.
func numberRat(v any) *big.Rat {
	r := new(big.Rat)
	switch x := v.(type) {
	case json.Number:
		if _, ok := r.SetString(string(x)); !ok {
			return r
		}
	case float64:
		r.SetFloat64(x)
	case float32:
		r.SetFloat64(float64(x))
	case int:
		r.SetInt64(int64(x))
	case int8:
		r.SetInt64(int64(x))
	case int16:
		r.SetInt64(int64(x))
	case int32:
		r.SetInt64(int64(x))
	case int64:
		r.SetInt64(x)
	case uint:
		r.SetUint64(uint64(x))
	case uint8:
		r.SetUint64(uint64(x))
	case uint16:
		r.SetUint64(uint64(x))
	case uint32:
		r.SetUint64(uint64(x))
	case uint64:
		r.SetUint64(x)
	}
	return r
}

func compareArrays(a, b *ArrayTree) int {
	minLen := min(a.Len(), b.Len())
	for i := 0; i < minLen; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

func compareObjects(a, b *ObjectTree) int {
	minLen := min(a.Len(), b.Len())
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
