package encode

import (
	"fmt"

	"github.com/bridge-core/tree-editor/tree"

	"github.com/fatih/color"
)

type Colorable struct {
	Type tree.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SepColor
	MetaColor
	SelectedColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range tree.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = MetaColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = SelectedColor
		colors.Map[able] = color.New(color.FgHiYellow, color.Bold).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = tree.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = tree.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = tree.BoolType
	colors.Map[able] = color.CyanString

	able.Type = tree.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = tree.ObjectType
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = tree.ArrayType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	return colors
}

func colorDefault(format string, a ...any) string {
	return fmt.Sprintf(format, a...)
}

func (c *Colors) Color(t tree.Type, attr ColorAttr, v string) string {
	f := c.Map[Colorable{Type: t, Attr: attr}]
	if f == nil {
		f = c.Default
	}
	return f("%s", v)
}
