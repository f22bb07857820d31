package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the JSONPath-like location of n: "$" for a root, then
// ".field" or "['odd.field']" for object members and "[i]" for array
// elements. It is computed from live keys.
func Path(n Node) (string, error) {
	p := n.Parent()
	if p == nil {
		return "$", nil
	}
	k, err := n.Key()
	if err != nil {
		return "", err
	}
	prefix, err := Path(p)
	if err != nil {
		return "", err
	}
	if k.IsIndex() {
		return prefix + "[" + strconv.Itoa(k.Index()) + "]", nil
	}
	return prefix + pathField(k.Field()), nil
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\ ") == -1 {
		return "." + f
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "['" + r.Replace(f) + "']"
}

// ParsePath parses a path as produced by Path into its keys.
func ParsePath(p string) ([]Key, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrBadPath, p)
	}
	var res []Key
	frag := p[1:]
	for len(frag) != 0 {
		var (
			k   Key
			err error
		)
		switch frag[0] {
		case '.':
			k, frag, err = parseDotField(frag[1:])
		case '[':
			k, frag, err = parseBracket(frag[1:])
		default:
			err = fmt.Errorf("expected '.' or '['")
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
		}
		res = append(res, k)
	}
	return res, nil
}

func parseDotField(frag string) (Key, string, error) {
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		i = len(frag)
	}
	if i == 0 {
		return Key{}, "", fmt.Errorf("empty field")
	}
	return FieldKey(frag[:i]), frag[i:], nil
}

func parseBracket(frag string) (Key, string, error) {
	if len(frag) > 0 && frag[0] == '\'' {
		field, rest, err := parseQuoted(frag[1:])
		if err != nil {
			return Key{}, "", err
		}
		if len(rest) == 0 || rest[0] != ']' {
			return Key{}, "", fmt.Errorf("expected ']' after quoted field")
		}
		return FieldKey(field), rest[1:], nil
	}
	i := strings.IndexByte(frag, ']')
	if i == -1 {
		return Key{}, "", fmt.Errorf("expected '[' <index> ']'")
	}
	u64, err := strconv.ParseUint(frag[:i], 10, 31)
	if err != nil {
		return Key{}, "", err
	}
	return IndexKey(int(u64)), frag[i+1:], nil
}

func parseQuoted(frag string) (field, rest string, err error) {
	res := make([]byte, 0, len(frag))
	for i := 0; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			i++
			if i == len(frag) {
				return "", "", fmt.Errorf("unterminated escape")
			}
			res = append(res, frag[i])
		case '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// Get returns the live node at path below root.
func Get(root Node, path string) (Node, error) {
	keys, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return GetKeys(root, keys)
}

// GetKeys follows keys from root.
func GetKeys(root Node, keys []Key) (Node, error) {
	res := root
	for _, k := range keys {
		next, err := child(res, k)
		if err != nil {
			return nil, err
		}
		res = next
	}
	return res, nil
}

func child(n Node, k Key) (Node, error) {
	switch x := n.(type) {
	case *ObjectTree:
		if k.IsIndex() {
			return nil, fmt.Errorf("%w: index %d in object", ErrNotFound, k.Index())
		}
		c, ok := x.Get(k.Field())
		if !ok {
			return nil, fmt.Errorf("%w: key %q", ErrNotFound, k.Field())
		}
		return c, nil
	case *ArrayTree:
		if !k.IsIndex() {
			return nil, fmt.Errorf("%w: field %q in array", ErrNotFound, k.Field())
		}
		c, ok := x.At(k.Index())
		if !ok {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexRange, k.Index(), x.Len())
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, k, n.Type())
}
