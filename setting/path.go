package setting

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the path of s from its root, e.g. "app.window.size[0]".
// Group children contribute their name, Array and List children their
// index in brackets. The root itself has path "".
func (s *Setting) Path() string {
	if s.parent == nil {
		return ""
	}
	prefix := s.parent.Path()
	if s.parent.typ == GroupType {
		if prefix == "" {
			return s.name
		}
		return prefix + "." + s.name
	}
	return prefix + "[" + strconv.Itoa(s.parentIndex) + "]"
}

// Lookup resolves a path relative to s. Path segments are group child
// names separated by dots; bracketed indices address Array and List
// elements, e.g. "app.window.size[0]".
func (s *Setting) Lookup(path string) (*Setting, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	cur := s
	rest := path
	for rest != "" {
		switch {
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, path)
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("%w: index %q in %q", ErrPath, rest[1:end], path)
			}
			if !cur.typ.IsAggregate() {
				return nil, fmt.Errorf("%w: cannot index %s at %q", ErrPath, cur.typ, cur.Path())
			}
			next := cur.At(idx)
			if next == nil {
				return nil, fmt.Errorf("%w: index %d at %q", ErrNotFound, idx, path)
			}
			cur = next
			rest = rest[end+1:]
		case rest[0] == '.':
			if rest == "." {
				return nil, fmt.Errorf("%w: trailing dot in %q", ErrPath, path)
			}
			rest = rest[1:]
		default:
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			name := rest[:end]
			if !validName(name) {
				return nil, fmt.Errorf("%w: segment %q in %q", ErrPath, name, path)
			}
			next := cur.Child(name)
			if next == nil {
				return nil, fmt.Errorf("%w: %q at %q", ErrNotFound, name, path)
			}
			cur = next
			rest = rest[end:]
		}
	}
	return cur, nil
}
