package setting

import (
	"errors"
	"testing"
)

func TestAddGroupChildren(t *testing.T) {
	g := New(GroupType)
	a, err := g.Add("alpha", IntType)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if a.Name() != "alpha" || a.Type() != IntType {
		t.Errorf("Add() = %s %s, want alpha Int", a.Name(), a.Type())
	}
	if a.Parent() != g || a.Index() != 0 {
		t.Errorf("child parent/index = %v/%d", a.Parent(), a.Index())
	}
	if _, err := g.Add("alpha", StringType); !errors.Is(err, ErrName) {
		t.Errorf("duplicate name err = %v, want ErrName", err)
	}
	if _, err := g.Add("", StringType); !errors.Is(err, ErrName) {
		t.Errorf("empty name err = %v, want ErrName", err)
	}
	if _, err := g.Add("9bad", StringType); !errors.Is(err, ErrName) {
		t.Errorf("invalid name err = %v, want ErrName", err)
	}
	if _, err := g.Add("ok-name_2", StringType); err != nil {
		t.Errorf("valid name err = %v", err)
	}
	if _, err := g.Append(BoolType); !errors.Is(err, ErrName) {
		t.Errorf("Append on group err = %v, want ErrName", err)
	}
}

func TestAddToScalar(t *testing.T) {
	s := New(IntType)
	if _, err := s.Add("x", IntType); !errors.Is(err, ErrNotAggregate) {
		t.Errorf("Add on scalar err = %v, want ErrNotAggregate", err)
	}
}

func TestArrayHomogeneity(t *testing.T) {
	a := New(ArrayType)
	if _, err := a.Append(IntType); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := a.Append(IntType); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := a.Append(FloatType); !errors.Is(err, ErrHomogeneous) {
		t.Errorf("mixed array err = %v, want ErrHomogeneous", err)
	}
	if _, err := a.Append(GroupType); !errors.Is(err, ErrType) {
		t.Errorf("aggregate array element err = %v, want ErrType", err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestListMixes(t *testing.T) {
	l := New(ListType)
	for _, typ := range []Type{IntType, StringType, GroupType, ArrayType, ListType} {
		c, err := l.Append(typ)
		if err != nil {
			t.Fatalf("Append(%s): %v", typ, err)
		}
		if c.Name() != "" {
			t.Errorf("list child name = %q, want unnamed", c.Name())
		}
	}
	// names are dropped for positional parents
	c, err := l.Add("ignored", IntType)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.Name() != "" {
		t.Errorf("list child name = %q, want unnamed", c.Name())
	}
}

func TestRemove(t *testing.T) {
	g := New(GroupType)
	for _, name := range []string{"a", "b", "c"} {
		if _, err := g.Add(name, IntType); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}
	b := g.Child("b")
	if err := g.Remove("b"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if b.Parent() != nil {
		t.Errorf("removed child still has a parent")
	}
	if g.Len() != 2 || g.At(1).Name() != "c" || g.At(1).Index() != 1 {
		t.Errorf("after remove: len=%d at(1)=%s idx=%d", g.Len(), g.At(1).Name(), g.At(1).Index())
	}
	if err := g.Remove("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(missing) err = %v, want ErrNotFound", err)
	}
	if err := g.RemoveAt(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveAt(5) err = %v, want ErrNotFound", err)
	}
}

func TestTypedAccess(t *testing.T) {
	g := New(GroupType)
	i, _ := g.Add("i", IntType)
	i64, _ := g.Add("i64", Int64Type)
	f, _ := g.Add("f", FloatType)
	s, _ := g.Add("s", StringType)
	b, _ := g.Add("b", BoolType)

	if err := i.SetInt(42); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if err := i64.SetInt64(1 << 40); err != nil {
		t.Fatalf("SetInt64: %v", err)
	}
	if err := f.SetFloat(2.5); err != nil {
		t.Fatalf("SetFloat: %v", err)
	}
	if err := s.SetString("hello"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if err := b.SetBool(true); err != nil {
		t.Fatalf("SetBool: %v", err)
	}

	// numeric getters convert
	if got := i.GetInt64(); got != 42 {
		t.Errorf("int as int64 = %d, want 42", got)
	}
	if got := i.GetFloat(); got != 42.0 {
		t.Errorf("int as float = %v, want 42", got)
	}
	if got := i64.GetFloat(); got != float64(int64(1)<<40) {
		t.Errorf("int64 as float = %v", got)
	}
	if got := f.GetInt(); got != 2 {
		t.Errorf("float as int = %d, want 2", got)
	}
	// non-numeric getters do not
	if got := s.GetInt(); got != 0 {
		t.Errorf("string as int = %d, want 0", got)
	}
	if got := i.GetString(); got != "" {
		t.Errorf("int as string = %q, want \"\"", got)
	}
	if got := i.GetBool(); got {
		t.Errorf("int as bool = true, want false")
	}

	// setters are strict
	if err := i.SetInt64(1); !errors.Is(err, ErrType) {
		t.Errorf("SetInt64 on Int err = %v, want ErrType", err)
	}
	if err := s.SetBool(true); !errors.Is(err, ErrType) {
		t.Errorf("SetBool on String err = %v, want ErrType", err)
	}
}

func TestSetFormat(t *testing.T) {
	g := New(GroupType)
	i, _ := g.Add("i", IntType)
	f, _ := g.Add("f", FloatType)

	if err := i.SetFormat(HexFormat); err != nil {
		t.Fatalf("SetFormat(hex) on int: %v", err)
	}
	if i.GetFormat() != HexFormat {
		t.Errorf("GetFormat() = %s, want hex", i.GetFormat())
	}
	if err := f.SetFormat(HexFormat); !errors.Is(err, ErrType) {
		t.Errorf("SetFormat(hex) on float err = %v, want ErrType", err)
	}
	if err := f.SetFormat(DefaultFormat); err != nil {
		t.Errorf("SetFormat(default) on float err = %v", err)
	}
}

func TestVisit(t *testing.T) {
	g := New(GroupType)
	sub, _ := g.Add("sub", ListType)
	sub.Append(IntType)
	sub.Append(IntType)
	g.Add("x", BoolType)

	var pre, post int
	err := g.Visit(func(s *Setting, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("visited pre=%d post=%d, want 5/5", pre, post)
	}
}
