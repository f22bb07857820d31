package main

import (
	"fmt"
	"io"

	"github.com/bridge-core/tree-editor/encode"
	"github.com/bridge-core/tree-editor/patch"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a JSON patch argument", cli.ErrUsage)
	}
	p := []byte(args[0])
	if cfg.File {
		p, err = readArg(cc, args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for i, file := range inputs(args[1:]) {
		root, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := patchDoc(cfg, cc.Out, root, p); err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if cfg.Verbose {
			theLog.Info("patched", "file", file)
		}
	}
	return nil
}

func patchDoc(cfg *PatchConfig, w io.Writer, root tree.Node, p []byte) error {
	var before tree.Node
	if cfg.Diff {
		before = tree.Clone(root)
	}
	res, err := patch.Apply(root, p)
	if err != nil {
		return err
	}
	if cfg.Diff {
		d, err := patch.Diff(before, res)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, d)
		return err
	}
	if err := encode.Encode(res, w, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
