package interop

import (
	"github.com/goccy/go-yaml"

	"github.com/conftree/go-conftree/setting"
)

// FromYAML decodes a YAML document into a setting tree. Mappings are
// decoded as ordered maps so group children keep their document order.
func FromYAML(data []byte) (*setting.Setting, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// ToYAML renders a setting tree as YAML, preserving group child order.
func ToYAML(s *setting.Setting) ([]byte, error) {
	return yaml.Marshal(orderedAny(s))
}

func orderedAny(s *setting.Setting) any {
	switch s.Type() {
	case setting.GroupType:
		ms := make(yaml.MapSlice, 0, s.Len())
		for i := 0; i < s.Len(); i++ {
			c := s.At(i)
			ms = append(ms, yaml.MapItem{Key: c.Name(), Value: orderedAny(c)})
		}
		return ms
	case setting.ArrayType, setting.ListType:
		vs := make([]any, s.Len())
		for i := 0; i < s.Len(); i++ {
			vs[i] = orderedAny(s.At(i))
		}
		return vs
	default:
		return ToAny(s)
	}
}
