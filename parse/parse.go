// Package parse reads JSON and YAML documents into trees, keeping object
// members in document order.
package parse

import (
	"fmt"

	"github.com/bridge-core/tree-editor/debug"
	"github.com/bridge-core/tree-editor/format"
	"github.com/bridge-core/tree-editor/tree"
)

// Parse reads one document. JSON is the default format.
func Parse(d []byte, opts ...ParseOption) (tree.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		v   any
		err error
	)
	switch {
	case pOpts.format.IsJSON():
		v, err = decodeJSON(d)
	case pOpts.format.IsYAML():
		v, err = decodeYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	res, err := tree.FromAny(v, pOpts.TreeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s document of %d bytes into %s\n", pOpts.format, len(d), res)
	}
	return res, nil
}
