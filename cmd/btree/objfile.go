package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bridge-core/tree-editor/parse"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, file string) (tree.Node, error) {
	d, err := readArg(cc, file)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	if cfg.Verbose {
		theLog.Info("loaded", "file", file, "format", cfg.inFormat(file), "height", res.Height())
	}
	return res, nil
}

// inputs are the files named by args, or stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}

// lookup resolves a JSON pointer if p starts with '/' and a path otherwise.
// Paths may leave out the leading '$'.
func lookup(root tree.Node, p string) (tree.Node, error) {
	if strings.HasPrefix(p, "/") {
		return tree.GetPointer(root, p)
	}
	if !strings.HasPrefix(p, "$") {
		p = "$" + p
	}
	return tree.Get(root, p)
}
