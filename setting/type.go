package setting

import "fmt"

// Type identifies the kind of value a Setting holds.
type Type int

const (
	NoneType Type = iota
	IntType
	Int64Type
	FloatType
	StringType
	BoolType
	GroupType
	ArrayType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:   "None",
		IntType:    "Int",
		Int64Type:  "Int64",
		FloatType:  "Float",
		StringType: "String",
		BoolType:   "Bool",
		GroupType:  "Group",
		ArrayType:  "Array",
		ListType:   "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"None":   NoneType,
		"Int":    IntType,
		"Int64":  Int64Type,
		"Float":  FloatType,
		"String": StringType,
		"Bool":   BoolType,
		"Group":  GroupType,
		"Array":  ArrayType,
		"List":   ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NoneType,
		IntType,
		Int64Type,
		FloatType,
		StringType,
		BoolType,
		GroupType,
		ArrayType,
		ListType,
	}
}

// IsScalar reports whether t is one of the scalar value kinds.
func (t Type) IsScalar() bool {
	switch t {
	case IntType, Int64Type, FloatType, StringType, BoolType:
		return true
	default:
		return false
	}
}

// IsAggregate reports whether t is a kind that holds children.
func (t Type) IsAggregate() bool {
	switch t {
	case GroupType, ArrayType, ListType:
		return true
	default:
		return false
	}
}

// IsNumber reports whether t is an integer or floating point kind.
func (t Type) IsNumber() bool {
	switch t {
	case IntType, Int64Type, FloatType:
		return true
	default:
		return false
	}
}

// IsInteger reports whether t is a kind the Hex display format applies to.
func (t Type) IsInteger() bool {
	return t == IntType || t == Int64Type
}
