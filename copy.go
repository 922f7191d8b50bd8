package conftree

import (
	"github.com/conftree/go-conftree/debug"
	"github.com/conftree/go-conftree/setting"
)

// Copy clones the subtree rooted at src into dst, creating one new child
// of dst mirroring src's type, value, and descendants. dst must be a
// Group or a List; Copy returns false and does nothing otherwise. Copying
// directly into an Array is rejected because a top-level clone cannot
// guarantee the array's element type.
//
// Below the top level the copy is best effort: a child whose insertion
// fails (for example a duplicate name in the destination group) is
// skipped and the rest of the subtree is still copied. Recursion depth
// equals the depth of the source subtree.
func Copy(dst, src *setting.Setting) bool {
	if !dst.IsGroup() && !dst.IsList() {
		return false
	}
	if debug.Copy() {
		debug.Logf("copy %q (%s) into %q (%s)",
			src.Path(), src.Type(), dst.Path(), dst.Type())
	}
	if src.IsAggregate() {
		copyAggregate(dst, src)
	} else {
		copySimple(dst, src)
	}
	return true
}

// copySimple copies a scalar src into dst by name. An aggregate src
// diverts to copyAggregate.
func copySimple(dst, src *setting.Setting) {
	if src.IsAggregate() {
		copyAggregate(dst, src)
		return
	}
	set, err := dst.Add(src.Name(), src.Type())
	if err != nil {
		if debug.Copy() {
			debug.Logf("copy: skip %q: %v", src.Path(), err)
		}
		return
	}
	copyScalar(set, src)
}

// copyElem appends a scalar src to a positional dst. An aggregate src
// diverts to copyAggregate.
func copyElem(dst, src *setting.Setting) {
	if src.IsAggregate() {
		copyAggregate(dst, src)
		return
	}
	set, err := dst.Append(src.Type())
	if err != nil {
		if debug.Copy() {
			debug.Logf("copy: skip %q: %v", src.Path(), err)
		}
		return
	}
	copyScalar(set, src)
}

// copyAggregate creates one new aggregate child of dst mirroring src and
// copies src's children into it. The dispatch is chosen by the source's
// kind: group children carry names, array and list children are
// positional.
func copyAggregate(dst, src *setting.Setting) {
	agg, err := dst.Add(src.Name(), src.Type())
	if err != nil {
		if debug.Copy() {
			debug.Logf("copy: skip %q: %v", src.Path(), err)
		}
		return
	}
	n := src.Len()
	for i := 0; i < n; i++ {
		if src.IsGroup() {
			copySimple(agg, src.At(i))
		} else {
			copyElem(agg, src.At(i))
		}
	}
}

// copyScalar moves the payload between two same-typed scalar settings.
// The hex display hint travels with integer values only.
func copyScalar(set, src *setting.Setting) {
	switch src.Type() {
	case setting.IntType:
		set.SetInt(src.GetInt())
		set.SetFormat(src.GetFormat())
	case setting.Int64Type:
		set.SetInt64(src.GetInt64())
		set.SetFormat(src.GetFormat())
	case setting.FloatType:
		set.SetFloat(src.GetFloat())
	case setting.StringType:
		set.SetString(src.GetString())
	case setting.BoolType:
		set.SetBool(src.GetBool())
	}
}
