package dump

import (
	"strings"

	"github.com/fatih/color"

	"github.com/conftree/go-conftree/setting"
)

type Colorable struct {
	Type setting.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	TypeColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func DefaultColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range setting.Types() {
		able := Colorable{Type: t, Attr: NameColor}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = TypeColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = setting.IntType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = setting.Int64Type
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = setting.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = setting.BoolType
	colors.Map[able] = color.CyanString

	able.Type = setting.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t setting.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t setting.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
