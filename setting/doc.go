// Package setting provides the typed node model for configuration trees.
//
// A configuration is a tree of Setting nodes. Scalar settings hold one
// value of a fixed kind (Int, Int64, Float, String, Bool); aggregate
// settings hold ordered children (Group, Array, List). The kind of a
// setting is fixed when it is created with Add or Append and never
// changes afterwards.
//
// The three aggregate kinds differ in how children are addressed:
//
//   - Group: children are named; names are non-empty and unique among
//     siblings. Iteration order is preserved.
//   - List: children are positional and may mix any kinds.
//   - Array: children are positional and must all share one scalar kind.
//
// Integer settings additionally carry a display Format (DefaultFormat or
// HexFormat), a rendering hint independent of the stored value.
//
// Parent links are non-owning back-references; a setting's subtree is
// owned through the children sequence and is discarded when the setting
// is removed from its parent.
//
// Settings are not safe for concurrent use; callers must synchronize
// access or copy trees per goroutine.
package setting
