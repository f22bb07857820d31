package main

import (
	"fmt"
	"io"

	"github.com/bridge-core/tree-editor/encode"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path or pointer", cli.ErrUsage)
	}
	p := args[0]
	for i, file := range inputs(args[1:]) {
		root, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		n, err := lookup(root, p)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", p, file, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := encode.Encode(n, cc.Out, cfg.encOpts()...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires one argument, a path or pointer", cli.ErrUsage)
	}
	p := args[0]
	for _, file := range inputs(args[1:]) {
		root, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		n, err := lookup(root, p)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", p, file, err)
		}
		if err := writeKeys(cc.Out, n); err != nil {
			return fmt.Errorf("error listing %s in %s: %w", p, file, err)
		}
	}
	return nil
}

// writeKeys writes the key and type of each child of n, one per line.
func writeKeys(w io.Writer, n tree.Node) error {
	c, ok := n.(tree.Container)
	if !ok {
		return fmt.Errorf("%s has no children", n.Type())
	}
	for _, child := range c.Children() {
		k, err := child.Key()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", k, child.Type()); err != nil {
			return err
		}
	}
	return nil
}
