package main

import (
	"fmt"
	"io"

	"github.com/bridge-core/tree-editor/query"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args[1:])
	for _, file := range files {
		root, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		ns, err := query.Find(root, q)
		if err != nil {
			return fmt.Errorf("error searching %s: %w", file, err)
		}
		if cfg.Verbose {
			theLog.Info("found", "file", file, "query", q, "matches", len(ns))
		}
		prefix := ""
		if len(files) > 1 {
			prefix = file + ":"
		}
		if err := writeMatches(cc.Out, prefix, ns, cfg.Ptr, cfg.Values); err != nil {
			return err
		}
	}
	return nil
}

// writeMatches writes one line per node: prefix and the path or pointer of
// the node, then a tab and its compact JSON if values is set.
func writeMatches(w io.Writer, prefix string, ns []tree.Node, ptr, values bool) error {
	for _, n := range ns {
		var (
			loc string
			err error
		)
		if ptr {
			loc, err = tree.Pointer(n)
		} else {
			loc, err = tree.Path(n)
		}
		if err != nil {
			return err
		}
		line := prefix + loc
		if values {
			d, err := n.MarshalJSON()
			if err != nil {
				return err
			}
			line += "\t" + string(d)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
