package parse

import (
	"github.com/bridge-core/tree-editor/format"
	"github.com/bridge-core/tree-editor/tree"
)

type parseOpts struct {
	format format.Format
	ids    tree.IDFunc
}

func (o *parseOpts) TreeOpts() []tree.Option {
	if o.ids == nil {
		return nil
	}
	return []tree.Option{tree.WithIDs(o.ids)}
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseIDs sets the identifier source of the parsed nodes.
func ParseIDs(ids tree.IDFunc) ParseOption {
	return func(o *parseOpts) { o.ids = ids }
}
