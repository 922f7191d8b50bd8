package setting

import "errors"

var (
	ErrType         = errors.New("type mismatch")
	ErrName         = errors.New("bad setting name")
	ErrNotAggregate = errors.New("not an aggregate setting")
	ErrHomogeneous  = errors.New("array elements must share one scalar type")
	ErrNotFound     = errors.New("no such setting")
	ErrPath         = errors.New("bad path")
	ErrFormat       = errors.New("bad format")
)
