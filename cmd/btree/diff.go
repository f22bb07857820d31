package main

import (
	"fmt"
	"io"

	"github.com/bridge-core/tree-editor/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d, err := patch.Diff(from, to)
	if err != nil {
		return fmt.Errorf("error diffing: %w", err)
	}
	_, err = io.WriteString(cc.Out, d)
	return err
}
