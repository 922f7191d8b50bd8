package setting

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two settings.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Settings of different types order by type rank:
// None < Bool < Int < Int64 < Float < String < Array < List < Group.
func Compare(a, b *Setting) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case BoolType:
		if a.boolVal == b.boolVal {
			return 0
		}
		if !a.boolVal {
			return -1
		}
		return 1
	case IntType, Int64Type:
		return cmp.Compare(a.intVal, b.intVal)
	case FloatType:
		return cmp.Compare(a.floatVal, b.floatVal)
	case StringType:
		return strings.Compare(a.strVal, b.strVal)
	case ArrayType, ListType:
		return compareElems(a, b)
	case GroupType:
		return compareGroups(a, b)
	}
	return 0
}

func rank(t Type) int {
	switch t {
	case NoneType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case Int64Type:
		return 3
	case FloatType:
		return 4
	case StringType:
		return 5
	case ArrayType:
		return 6
	case ListType:
		return 7
	case GroupType:
		return 8
	}
	return 100
}

func compareElems(a, b *Setting) int {
	lenA := len(a.children)
	lenB := len(b.children)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareGroups(a, b *Setting) int {
	lenA := len(a.children)
	lenB := len(b.children)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.children[i].name, b.children[i].name); c != 0 {
			return c
		}
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// Equal reports whether a and b are structurally identical: same type,
// name, display format, scalar payload, and children, in order.
func Equal(a, b *Setting) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ || a.name != b.name || a.format != b.format {
		return false
	}
	switch a.typ {
	case BoolType:
		return a.boolVal == b.boolVal
	case IntType, Int64Type:
		return a.intVal == b.intVal
	case FloatType:
		return a.floatVal == b.floatVal
	case StringType:
		return a.strVal == b.strVal
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
