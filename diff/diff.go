// Package diff reports structural differences between two setting trees.
package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/conftree/go-conftree/debug"
	"github.com/conftree/go-conftree/setting"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Changed
	Retyped
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	case Retyped:
		return "retyped"
	}
	return "<unknown kind>"
}

// Delta describes one difference. Path addresses the setting in its tree;
// From and To are the differing settings (one of them nil for Added and
// Removed). For string scalars Text carries a compact character diff.
type Delta struct {
	Path     string
	Kind     Kind
	From, To *setting.Setting
	Text     string
}

// Diff walks from and to in parallel and returns the differences between
// them. Group children are matched by name, array and list children by
// position. A type change reports one Retyped delta for the whole
// subtree.
func Diff(from, to *setting.Setting) []Delta {
	var ds []Delta
	walk(from, to, &ds)
	if debug.Diff() {
		for _, d := range ds {
			debug.Logf("diff: %s %q", d.Kind, d.Path)
		}
	}
	return ds
}

func walk(from, to *setting.Setting, ds *[]Delta) {
	if from.Type() != to.Type() {
		*ds = append(*ds, Delta{Path: from.Path(), Kind: Retyped, From: from, To: to})
		return
	}
	if from.IsScalar() {
		walkScalar(from, to, ds)
		return
	}
	if from.IsGroup() {
		walkGroup(from, to, ds)
		return
	}
	n := min(from.Len(), to.Len())
	for i := 0; i < n; i++ {
		walk(from.At(i), to.At(i), ds)
	}
	for i := n; i < from.Len(); i++ {
		*ds = append(*ds, Delta{Path: from.At(i).Path(), Kind: Removed, From: from.At(i)})
	}
	for i := n; i < to.Len(); i++ {
		*ds = append(*ds, Delta{Path: to.At(i).Path(), Kind: Added, To: to.At(i)})
	}
}

func walkGroup(from, to *setting.Setting, ds *[]Delta) {
	for i := 0; i < from.Len(); i++ {
		f := from.At(i)
		t := to.Child(f.Name())
		if t == nil {
			*ds = append(*ds, Delta{Path: f.Path(), Kind: Removed, From: f})
			continue
		}
		walk(f, t, ds)
	}
	for i := 0; i < to.Len(); i++ {
		t := to.At(i)
		if from.Child(t.Name()) == nil {
			*ds = append(*ds, Delta{Path: t.Path(), Kind: Added, To: t})
		}
	}
}

func walkScalar(from, to *setting.Setting, ds *[]Delta) {
	d := Delta{Path: from.Path(), Kind: Changed, From: from, To: to}
	switch from.Type() {
	case setting.BoolType:
		if from.GetBool() == to.GetBool() {
			return
		}
	case setting.IntType, setting.Int64Type:
		if from.GetInt64() == to.GetInt64() &&
			from.GetFormat() == to.GetFormat() {
			return
		}
	case setting.FloatType:
		if from.GetFloat() == to.GetFloat() {
			return
		}
	case setting.StringType:
		if from.GetString() == to.GetString() {
			return
		}
		d.Text = stringDiff(from.GetString(), to.GetString())
	}
	*ds = append(*ds, d)
}

func stringDiff(a, b string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, strings.Contains(a, "\n") && strings.Contains(b, "\n"))
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "]")
		case diffpatch.DiffInsert:
			sb.WriteString("[+" + d.Text + "]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
