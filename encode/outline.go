package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bridge-core/tree-editor/tree"
)

type outlineState struct {
	ids     bool
	heights bool
	colors  *Colors
}

type OutlineOption func(*outlineState)

// OutlineIDs adds each node's identifier to its line.
func OutlineIDs(v bool) OutlineOption {
	return func(ol *outlineState) { ol.ids = v }
}

// OutlineHeights adds each node's rendered height to its line.
func OutlineHeights(v bool) OutlineOption {
	return func(ol *outlineState) { ol.heights = v }
}

func OutlineColors(c *Colors) OutlineOption {
	return func(ol *outlineState) { ol.colors = c }
}

// Outline writes one line per visible node of n: the node's key, indented
// by depth, and a summary of its value. Children of closed containers are
// not visible. Selected nodes are marked with '*'.
func Outline(n tree.Node, w io.Writer, opts ...OutlineOption) error {
	ol := &outlineState{}
	for _, opt := range opts {
		opt(ol)
	}
	if ol.colors == nil {
		ol.colors = &Colors{Default: colorDefault}
	}
	depth := 0
	return tree.Visit(n, func(x tree.Node, isPost bool) (bool, error) {
		if isPost {
			if _, ok := x.(tree.Container); ok {
				depth--
			}
			return true, nil
		}
		line, err := ol.line(x, x == n, depth)
		if err != nil {
			return false, err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return false, err
		}
		c, ok := x.(tree.Container)
		if !ok {
			return true, nil
		}
		depth++
		return c.Open(), nil
	})
}

func (ol *outlineState) line(n tree.Node, root bool, depth int) (string, error) {
	c := ol.colors
	t := n.Type()
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat("  ", depth))
	if n.Selected() {
		buf.WriteString(c.Color(t, SelectedColor, "*"))
	} else {
		buf.WriteByte(' ')
	}
	key := "$"
	if !root {
		k, err := n.Key()
		if err != nil {
			return "", err
		}
		key = k.String()
		if k.IsIndex() {
			key = "[" + key + "]"
		}
	}
	buf.WriteString(c.Color(t, KeyColor, key))
	buf.WriteString(c.Color(t, SepColor, ":"))
	buf.WriteByte(' ')
	summary, err := ol.summary(n)
	if err != nil {
		return "", err
	}
	buf.WriteString(c.Color(t, ValueColor, summary))
	var meta []string
	if ol.heights {
		meta = append(meta, strconv.Itoa(n.Height())+"px")
	}
	if ol.ids {
		meta = append(meta, n.ID())
	}
	if len(meta) != 0 {
		buf.WriteByte(' ')
		buf.WriteString(c.Color(t, MetaColor, "("+strings.Join(meta, " ")+")"))
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func (ol *outlineState) summary(n tree.Node) (string, error) {
	switch x := n.(type) {
	case *tree.ObjectTree:
		return containerSummary("{", x.Len(), "}", x.Open()), nil
	case *tree.ArrayTree:
		return containerSummary("[", x.Len(), "]", x.Open()), nil
	}
	d, err := n.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func containerSummary(lb string, n int, rb string, expanded bool) string {
	s := fmt.Sprintf("%s%d%s", lb, n, rb)
	if !expanded && n > 0 {
		s += " ..."
	}
	return s
}
