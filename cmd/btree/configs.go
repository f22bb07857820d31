package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bridge-core/tree-editor/encode"
	"github.com/bridge-core/tree-editor/format"
	"github.com/bridge-core/tree-editor/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indentation width'"`
	Verbose bool `cli:"name=v desc='log what is done to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat is the format given by -j or -y, if any.
func (cfg *MainConfig) flagFormat() *format.Format {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

// inFormat is the format in which to read file: an explicit input format,
// then -j or -y, then the file's extension.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f := cfg.flagFormat(); f != nil {
		return *f
	}
	if file == "-" {
		return format.JSONFormat
	}
	return format.FromPath(file)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f := cfg.flagFormat(); f != nil {
		return *f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(file)),
	}
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

// colors returns the outline colors for w: always with -color, never when
// -color was given as false, and otherwise when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	IDs     bool   `cli:"name=ids desc='show node identifiers'"`
	Heights bool   `cli:"name=heights desc='show rendered heights'"`
	Depth   int    `cli:"name=depth desc='close containers at this depth and below (0 leaves all open)'"`
	Select  string `cli:"name=select desc='mark nodes matching this expression'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type FindConfig struct {
	*MainConfig

	Values bool `cli:"name=values desc='print matched values after their paths'"`
	Ptr    bool `cli:"name=ptr desc='print JSON pointers instead of paths'"`

	Find *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File bool `cli:"name=f desc='patch arg as file'"`
	Diff bool `cli:"name=d aliases=diff desc='print a diff instead of the result'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
