package setting

import "fmt"

// Setting is a node in a configuration tree. A setting is either scalar,
// holding one typed value, or aggregate, holding an ordered sequence of
// child settings. The type is fixed when the setting is created.
//
// Children of a Group carry names unique among their siblings; children of
// an Array or List are purely positional. Array children must all share one
// scalar type.
type Setting struct {
	typ         Type
	format      Format
	name        string
	parent      *Setting
	parentIndex int

	children []*Setting

	intVal   int64
	floatVal float64
	strVal   string
	boolVal  bool
}

// New returns a parentless setting of type t, typically a Group or List
// serving as the root of a tree.
func New(t Type) *Setting {
	return &Setting{typ: t}
}

func (s *Setting) Type() Type { return s.typ }

func (s *Setting) Name() string { return s.name }

func (s *Setting) Parent() *Setting { return s.parent }

// Index returns s's position among its parent's children, or -1 for a root.
func (s *Setting) Index() int {
	if s.parent == nil {
		return -1
	}
	return s.parentIndex
}

func (s *Setting) IsScalar() bool { return s.typ.IsScalar() }

func (s *Setting) IsAggregate() bool { return s.typ.IsAggregate() }

func (s *Setting) IsGroup() bool { return s.typ == GroupType }

func (s *Setting) IsArray() bool { return s.typ == ArrayType }

func (s *Setting) IsList() bool { return s.typ == ListType }

// Len returns the number of children, 0 for scalar settings.
func (s *Setting) Len() int { return len(s.children) }

// At returns the i'th child, or nil if i is out of range.
func (s *Setting) At(i int) *Setting {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	return s.children[i]
}

// Child returns the named child of a Group, or nil.
func (s *Setting) Child(name string) *Setting {
	if s.typ != GroupType {
		return nil
	}
	for _, c := range s.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Root returns the root of the tree containing s.
func (s *Setting) Root() *Setting {
	res := s
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Add creates a new child of type t. For a Group parent, name must be
// non-empty, valid, and unique among siblings. For an Array or List parent,
// name is ignored and the child is appended positionally; Array parents
// additionally require t to be scalar and to match the existing element
// type.
func (s *Setting) Add(name string, t Type) (*Setting, error) {
	if !s.typ.IsAggregate() {
		return nil, fmt.Errorf("%w: cannot add to %s", ErrNotAggregate, s.typ)
	}
	if !t.IsScalar() && !t.IsAggregate() {
		return nil, fmt.Errorf("%w: cannot add %s", ErrType, t)
	}
	switch s.typ {
	case GroupType:
		if !validName(name) {
			return nil, fmt.Errorf("%w: %q", ErrName, name)
		}
		if s.Child(name) != nil {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrName, name)
		}
	case ArrayType:
		if !t.IsScalar() {
			return nil, fmt.Errorf("%w: array element of type %s", ErrType, t)
		}
		if len(s.children) > 0 && s.children[0].typ != t {
			return nil, fmt.Errorf("%w: %s element in %s array",
				ErrHomogeneous, t, s.children[0].typ)
		}
		name = ""
	default:
		name = ""
	}
	c := &Setting{
		typ:         t,
		name:        name,
		parent:      s,
		parentIndex: len(s.children),
	}
	s.children = append(s.children, c)
	return c, nil
}

// Append creates a new unnamed child of type t at the end of a List or
// Array.
func (s *Setting) Append(t Type) (*Setting, error) {
	if s.typ == GroupType {
		return nil, fmt.Errorf("%w: group children require a name", ErrName)
	}
	return s.Add("", t)
}

// Remove removes the named child of a Group, destroying its subtree.
func (s *Setting) Remove(name string) error {
	c := s.Child(name)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.RemoveAt(c.parentIndex)
}

// RemoveAt removes the i'th child, destroying its subtree.
func (s *Setting) RemoveAt(i int) error {
	if !s.typ.IsAggregate() {
		return fmt.Errorf("%w: cannot remove from %s", ErrNotAggregate, s.typ)
	}
	if i < 0 || i >= len(s.children) {
		return fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	c := s.children[i]
	c.parent = nil
	c.parentIndex = 0
	s.children = append(s.children[:i], s.children[i+1:]...)
	for j := i; j < len(s.children); j++ {
		s.children[j].parentIndex = j
	}
	return nil
}

// Visit calls f on s and, when f returns dive=true, on every node of s's
// subtree in depth-first order. f is called a second time with isPost=true
// after a node's children have been visited.
func (s *Setting) Visit(f func(s *Setting, isPost bool) (bool, error)) error {
	dive, err := f(s, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range s.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(s, true); err != nil {
		return err
	}
	return nil
}

// valid setting names: a letter or '*' followed by letters, digits,
// '-', '_' or '*'.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '*':
		case r == '-', r == '_', r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
