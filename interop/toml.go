package interop

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/conftree/go-conftree/setting"
)

// FromTOML decodes a TOML document into a setting tree. The TOML decoder
// surfaces tables as plain maps, so group child order follows sorted key
// order rather than document order.
func FromTOML(data []byte) (*setting.Setting, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return FromAny(m)
}

// ToTOML renders a setting tree as TOML. The root must be a group; TOML
// documents are tables at the top level.
func ToTOML(s *setting.Setting) ([]byte, error) {
	if !s.IsGroup() {
		return nil, fmt.Errorf("%w: TOML root must be a group, got %s", ErrValue, s.Type())
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(ToAny(s)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
