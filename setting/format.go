package setting

import "fmt"

// Format is a display hint for integer settings. It does not change the
// stored value, only how writers render it.
type Format int

const (
	DefaultFormat Format = iota
	HexFormat
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"default": DefaultFormat,
		"hex":     HexFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case DefaultFormat:
		return []byte("default"), nil
	case HexFormat:
		return []byte("hex"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
