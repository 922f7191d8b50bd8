package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Copy    bool
	Interop bool
	Diff    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Copy = boolEnv("CONFTREE_DEBUG_COPY")
	d.Interop = boolEnv("CONFTREE_DEBUG_INTEROP")
	d.Diff = boolEnv("CONFTREE_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Copy() bool {
	return d.Copy
}
func Interop() bool {
	return d.Interop
}
func Diff() bool {
	return d.Diff
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
