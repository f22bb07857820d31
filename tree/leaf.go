package tree

import (
	"encoding/json"
	"fmt"
	"math"
)

// Leaf wraps a primitive: nil, a bool, a string or a number.
type Leaf struct {
	nodeBase
	typ Type
	v   any
}

// NewLeaf wraps v, which must be a JSON primitive.
func NewLeaf(v any, opts ...Option) (*Leaf, error) {
	t, err := leafType(v)
	if err != nil {
		return nil, err
	}
	return &Leaf{nodeBase: newBase(buildOptions(opts)), typ: t, v: v}, nil
}

func leafType(v any) (Type, error) {
	switch x := v.(type) {
	case nil:
		return NullType, nil
	case bool:
		return BoolType, nil
	case string:
		return StringType, nil
	case json.Number:
		if !validNumber(x) {
			return 0, fmt.Errorf("%w: number %q", ErrUnsupportedValue, string(x))
		}
		return NumberType, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%w: %v", ErrUnsupportedValue, x)
		}
		return NumberType, nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return 0, fmt.Errorf("%w: %v", ErrUnsupportedValue, x)
		}
		return NumberType, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return NumberType, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func (l *Leaf) Type() Type        { return l.typ }
func (l *Leaf) Value() any        { return l.v }
func (l *Leaf) ToJSON() any       { return l.v }
func (l *Leaf) Height() int       { return RowHeight }
func (l *Leaf) Styles() Styles    { return stylesFor(l.Height()) }
func (l *Leaf) Key() (Key, error) { return keyOf(l) }

// Set replaces the primitive in place, keeping the leaf's identity. The new
// value must have the same type as the old one; use Retype otherwise.
func (l *Leaf) Set(v any) error {
	t, err := leafType(v)
	if err != nil {
		return err
	}
	if t != l.typ {
		return fmt.Errorf("%w: %s to %s", ErrTypeChange, l.typ, t)
	}
	l.v = v
	return nil
}

// Retype replaces l by a new leaf holding v at the same position in l's
// parent. The new leaf has a new identity and keeps l's selection state.
// A leaf that is not attached is not replaced anywhere.
func Retype(l *Leaf, v any, opts ...Option) (*Leaf, error) {
	res, err := NewLeaf(v, opts...)
	if err != nil {
		return nil, err
	}
	res.selected = l.selected
	if !Attached(l) {
		return res, nil
	}
	if err := ReplaceNode(l, res); err != nil {
		return nil, err
	}
	return res, nil
}
