package tree

import (
	stdjson "encoding/json"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the leaf's primitive.
func (l *Leaf) MarshalJSON() ([]byte, error) { return appendJSON(nil, l) }

// MarshalJSON encodes the object with its members in order.
func (o *ObjectTree) MarshalJSON() ([]byte, error) { return appendJSON(nil, o) }

func (a *ArrayTree) MarshalJSON() ([]byte, error) { return appendJSON(nil, a) }

func appendJSON(dst []byte, n Node) ([]byte, error) {
	switch x := n.(type) {
	case *Leaf:
		if num, ok := x.v.(stdjson.Number); ok {
			return append(dst, num...), nil
		}
		d, err := json.Marshal(x.v)
		if err != nil {
			return nil, err
		}
		return append(dst, d...), nil
	case *ObjectTree:
		dst = append(dst, '{')
		for i, k := range x.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			d, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			dst = append(dst, d...)
			dst = append(dst, ':')
			dst, err = appendJSON(dst, x.values[i])
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	case *ArrayTree:
		dst = append(dst, '[')
		for i, v := range x.values {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = appendJSON(dst, v)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	}
	return append(dst, "null"...), nil
}

func validNumber(num stdjson.Number) bool {
	if num == "" {
		return false
	}
	c := num[0]
	if c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(num))
}
