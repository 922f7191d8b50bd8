package interop

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/conftree/go-conftree/debug"
	"github.com/conftree/go-conftree/setting"
)

var ErrValue = errors.New("unrepresentable value")

// FromAny builds a setting tree from a decoded document value. Mappings
// become groups, sequences become arrays when every element shares one
// scalar kind and lists otherwise, and scalars take the narrowest setting
// kind that holds them. Null values and non-string mapping keys have no
// setting representation and are rejected.
func FromAny(v any) (*setting.Setting, error) {
	switch v.(type) {
	case yaml.MapSlice, map[string]any:
		root := setting.New(setting.GroupType)
		if err := fillGroup(root, v); err != nil {
			return nil, err
		}
		return root, nil
	case []any:
		root := setting.New(seqType(v.([]any)))
		if err := fillSeq(root, v.([]any)); err != nil {
			return nil, err
		}
		return root, nil
	default:
		return nil, fmt.Errorf("%w: document root %T", ErrValue, v)
	}
}

// ToAny converts a setting tree to plain Go values: map[string]any for
// groups, []any for arrays and lists. Group child order is not carried by
// Go maps; use ToYAML when order matters.
func ToAny(s *setting.Setting) any {
	switch s.Type() {
	case setting.GroupType:
		m := make(map[string]any, s.Len())
		for i := 0; i < s.Len(); i++ {
			c := s.At(i)
			m[c.Name()] = ToAny(c)
		}
		return m
	case setting.ArrayType, setting.ListType:
		vs := make([]any, s.Len())
		for i := 0; i < s.Len(); i++ {
			vs[i] = ToAny(s.At(i))
		}
		return vs
	case setting.IntType:
		return s.GetInt()
	case setting.Int64Type:
		return s.GetInt64()
	case setting.FloatType:
		return s.GetFloat()
	case setting.StringType:
		return s.GetString()
	case setting.BoolType:
		return s.GetBool()
	}
	return nil
}

func add(parent *setting.Setting, name string, v any) error {
	if debug.Interop() {
		debug.Logf("interop: add %q %T under %q", name, v, parent.Path())
	}
	switch vv := v.(type) {
	case yaml.MapSlice, map[string]any:
		g, err := parent.Add(name, setting.GroupType)
		if err != nil {
			return err
		}
		return fillGroup(g, v)
	case []any:
		seq, err := parent.Add(name, seqType(vv))
		if err != nil {
			return err
		}
		return fillSeq(seq, vv)
	default:
		t, ok := scalarType(v)
		if !ok {
			return fmt.Errorf("%w: %T at %q", ErrValue, v, parent.Path())
		}
		c, err := parent.Add(name, t)
		if err != nil {
			return err
		}
		return setScalar(c, v)
	}
}

func fillGroup(g *setting.Setting, v any) error {
	switch vv := v.(type) {
	case yaml.MapSlice:
		for _, item := range vv {
			key, ok := item.Key.(string)
			if !ok {
				return fmt.Errorf("%w: mapping key %T", ErrValue, item.Key)
			}
			if err := add(g, key, item.Value); err != nil {
				return err
			}
		}
	case map[string]any:
		// plain maps carry no order; sort keys so conversion is
		// deterministic
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := add(g, k, vv[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

func fillSeq(seq *setting.Setting, vs []any) error {
	if seq.Type() == setting.ArrayType {
		_, elem := classifySeq(vs)
		for _, v := range vs {
			c, err := seq.Append(elem)
			if err != nil {
				return err
			}
			if err := setScalar(c, v); err != nil {
				return err
			}
		}
		return nil
	}
	for _, v := range vs {
		if err := add(seq, "", v); err != nil {
			return err
		}
	}
	return nil
}

func seqType(vs []any) setting.Type {
	t, _ := classifySeq(vs)
	return t
}

// classifySeq classifies a decoded sequence: Array when every element
// shares one scalar setting kind, List otherwise. Integer elements of
// mixed widths count as one kind, promoted to Int64.
func classifySeq(vs []any) (setting.Type, setting.Type) {
	if len(vs) == 0 {
		return setting.ListType, setting.NoneType
	}
	elem, ok := scalarType(vs[0])
	if !ok {
		return setting.ListType, setting.NoneType
	}
	for _, v := range vs[1:] {
		t, ok := scalarType(v)
		if !ok {
			return setting.ListType, setting.NoneType
		}
		if t == elem {
			continue
		}
		if t.IsInteger() && elem.IsInteger() {
			elem = setting.Int64Type
			continue
		}
		return setting.ListType, setting.NoneType
	}
	return setting.ArrayType, elem
}

func scalarType(v any) (setting.Type, bool) {
	switch v.(type) {
	case bool:
		return setting.BoolType, true
	case string:
		return setting.StringType, true
	case float32, float64:
		return setting.FloatType, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		i, ok := toInt64(v)
		if !ok {
			return 0, false
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return setting.IntType, true
		}
		return setting.Int64Type, true
	default:
		return 0, false
	}
}

func setScalar(s *setting.Setting, v any) error {
	switch s.Type() {
	case setting.BoolType:
		return s.SetBool(v.(bool))
	case setting.StringType:
		return s.SetString(v.(string))
	case setting.FloatType:
		if f, ok := v.(float32); ok {
			return s.SetFloat(float64(f))
		}
		return s.SetFloat(v.(float64))
	case setting.IntType:
		i, _ := toInt64(v)
		return s.SetInt(int(i))
	case setting.Int64Type:
		i, ok := toInt64(v)
		if !ok {
			return fmt.Errorf("%w: %v does not fit int64", ErrValue, v)
		}
		return s.SetInt64(i)
	}
	return fmt.Errorf("%w: %T", ErrValue, v)
}

func toInt64(v any) (int64, bool) {
	switch i := v.(type) {
	case int:
		return int64(i), true
	case int8:
		return int64(i), true
	case int16:
		return int64(i), true
	case int32:
		return int64(i), true
	case int64:
		return i, true
	case uint:
		return int64(i), uint64(i) <= math.MaxInt64
	case uint8:
		return int64(i), true
	case uint16:
		return int64(i), true
	case uint32:
		return int64(i), true
	case uint64:
		return int64(i), i <= math.MaxInt64
	default:
		return 0, false
	}
}
