package tree

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Pointer returns the RFC 6901 JSON pointer of n relative to its root.
func Pointer(n Node) (string, error) {
	p := n.Parent()
	if p == nil {
		return "", nil
	}
	k, err := n.Key()
	if err != nil {
		return "", err
	}
	prefix, err := Pointer(p)
	if err != nil {
		return "", err
	}
	return prefix + "/" + pointerEscaper.Replace(k.String()), nil
}

// ParsePointer splits an RFC 6901 JSON pointer into unescaped reference
// tokens. The empty pointer has no tokens.
func ParsePointer(ptr string) ([]string, error) {
	if ptr == "" {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("%w: pointer %q should start with '/'", ErrBadPath, ptr)
	}
	toks := strings.Split(ptr[1:], "/")
	for i, tok := range toks {
		toks[i] = pointerUnescaper.Replace(tok)
	}
	return toks, nil
}

// ArrayIndex parses a pointer token addressing an element of an array of
// length n. With allowEnd, "-" and n itself address the end of the array.
func ArrayIndex(tok string, n int, allowEnd bool) (int, error) {
	if tok == "-" {
		if allowEnd {
			return n, nil
		}
		return 0, fmt.Errorf("%w: '-' does not address an element", ErrIndexRange)
	}
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, fmt.Errorf("%w: bad array index %q", ErrBadPath, tok)
	}
	i, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: bad array index %q", ErrBadPath, tok)
	}
	limit := n
	if allowEnd {
		limit++
	}
	if int(i) >= limit {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrIndexRange, i, n)
	}
	return int(i), nil
}

// GetPointer returns the live node addressed by ptr below root.
func GetPointer(root Node, ptr string) (Node, error) {
	toks, err := ParsePointer(ptr)
	if err != nil {
		return nil, err
	}
	res := root
	for _, tok := range toks {
		var k Key
		switch x := res.(type) {
		case *ArrayTree:
			i, err := ArrayIndex(tok, x.Len(), false)
			if err != nil {
				return nil, err
			}
			k = IndexKey(i)
		default:
			k = FieldKey(tok)
		}
		res, err = child(res, k)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
