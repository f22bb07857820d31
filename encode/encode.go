// Package encode writes trees as JSON or YAML, and renders the outline view
// of a tree used when inspecting documents.
package encode

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bridge-core/tree-editor/debug"
	"github.com/bridge-core/tree-editor/format"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	indent int
	wire   bool
}

// Encode writes n followed by a newline. Object members keep their order.
func Encode(n tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encoding %s as %s\n", n, es.format)
	}
	switch {
	case es.format.IsJSON():
		return encodeJSON(n, w, es)
	case es.format.IsYAML():
		return encodeYAML(n, w, es)
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
}

// MustString encodes n with opts and panics on failure.
func MustString(n tree.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeJSON(n tree.Node, w io.Writer, es *EncState) error {
	d, err := n.MarshalJSON()
	if err != nil {
		return err
	}
	if es.wire || es.indent <= 0 {
		return writeAll(w, append(d, '\n'))
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(d)*2))
	if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return writeAll(w, buf.Bytes())
}

func encodeYAML(n tree.Node, w io.Writer, es *EncState) error {
	indent := es.indent
	if indent <= 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(toYAML(n), yaml.Indent(indent))
	if err != nil {
		return err
	}
	return writeAll(w, d)
}

func toYAML(n tree.Node) any {
	switch x := n.(type) {
	case *tree.ObjectTree:
		res := make(yaml.MapSlice, 0, x.Len())
		for k, v := range x.All() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(v)})
		}
		return res
	case *tree.ArrayTree:
		res := make([]any, 0, x.Len())
		for _, v := range x.All() {
			res = append(res, toYAML(v))
		}
		return res
	}
	if num, ok := n.Value().(stdjson.Number); ok {
		if i, err := strconv.ParseInt(string(num), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(num), 64); err == nil {
			return f
		}
		return string(num)
	}
	return n.Value()
}

func writeAll(w io.Writer, d []byte) error {
	_, err := w.Write(d)
	return err
}
