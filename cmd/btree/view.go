package main

import (
	"fmt"
	"io"

	"github.com/bridge-core/tree-editor/encode"
	"github.com/bridge-core/tree-editor/query"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var q *query.Query
	if cfg.Select != "" {
		q, err = query.Compile(cfg.Select)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for i, file := range inputs(args) {
		root, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := prepareView(root, cfg.Depth, q); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := encode.Outline(root, cc.Out, cfg.outlineOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
	}
	return nil
}

func (cfg *ViewConfig) outlineOpts(w io.Writer) []encode.OutlineOption {
	res := []encode.OutlineOption{
		encode.OutlineIDs(cfg.IDs),
		encode.OutlineHeights(cfg.Heights),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.OutlineColors(c))
	}
	return res
}

// prepareView closes the containers at depth and below, unless depth is 0,
// and selects exactly the nodes matching q, if q is not nil.
func prepareView(root tree.Node, depth int, q *query.Query) error {
	return tree.Visit(root, func(n tree.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if q != nil {
			ok, err := q.Match(n)
			if err != nil {
				return false, err
			}
			n.SetSelected(ok)
		}
		if c, ok := n.(tree.Container); ok && depth > 0 && tree.Depth(n) >= depth {
			c.SetOpen(false)
		}
		return true, nil
	})
}
