// Package conftree implements a typed configuration tree: named and
// positional settings with scalar and aggregate kinds, the numeric
// literal codec used to move values between text and typed form, and
// tree-level operations such as subtree copying and structural diff.
//
// The node model lives in the setting package; this package hosts the
// operations that work on whole trees.
package conftree
