package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/conftree/go-conftree/literal"
	"github.com/conftree/go-conftree/setting"
)

// Dump writes a human-readable rendering of the tree rooted at s: one
// line per setting with its name (or index), type, and scalar payload.
// Integer settings with the hex display hint render in hexadecimal and
// floats render through the literal codec, so values read back the way a
// configuration writer would emit them.
func Dump(w io.Writer, s *setting.Setting, opts ...Option) error {
	st := &state{indent: 2, maxDepth: -1}
	for _, opt := range opts {
		opt(st)
	}
	if st.color == nil {
		st.color = noColor
	}
	label := s.Name()
	return writeOne(w, st, s, label, 0)
}

type state struct {
	indent   int
	maxDepth int
	color    func(setting.Type, ColorAttr, string) string
}

func noColor(_ setting.Type, _ ColorAttr, s string) string { return s }

func writeOne(w io.Writer, st *state, s *setting.Setting, label string, depth int) error {
	ind := strings.Repeat(" ", st.indent*depth)
	t := s.Type()
	head := ind
	if label != "" {
		head += st.color(t, NameColor, label) + ": "
	}
	head += st.color(t, TypeColor, t.String())
	if s.IsScalar() {
		head += " " + st.color(t, ValueColor, scalarText(s))
	}
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}
	if !s.IsAggregate() {
		return nil
	}
	if st.maxDepth >= 0 && depth >= st.maxDepth {
		if s.Len() > 0 {
			_, err := fmt.Fprintf(w, "%s...\n", strings.Repeat(" ", st.indent*(depth+1)))
			return err
		}
		return nil
	}
	for i := 0; i < s.Len(); i++ {
		c := s.At(i)
		label := c.Name()
		if label == "" {
			label = "[" + strconv.Itoa(i) + "]"
		}
		if err := writeOne(w, st, c, label, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func scalarText(s *setting.Setting) string {
	switch s.Type() {
	case setting.IntType, setting.Int64Type:
		if s.GetFormat() == setting.HexFormat {
			return "0x" + strconv.FormatUint(uint64(s.GetInt64()), 16)
		}
		return strconv.FormatInt(s.GetInt64(), 10)
	case setting.FloatType:
		return literal.FormatDouble(s.GetFloat(), 6, true)
	case setting.StringType:
		return strconv.Quote(s.GetString())
	case setting.BoolType:
		return strconv.FormatBool(s.GetBool())
	}
	return ""
}
