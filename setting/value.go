package setting

import "fmt"

// Scalar getters convert between the numeric kinds where the value is
// representable; a getter applied to any other kind returns the zero value.
// Setters never convert: each requires the setting's exact type.

func (s *Setting) GetInt() int {
	switch s.typ {
	case IntType, Int64Type:
		return int(s.intVal)
	case FloatType:
		return int(s.floatVal)
	default:
		return 0
	}
}

func (s *Setting) GetInt64() int64 {
	switch s.typ {
	case IntType, Int64Type:
		return s.intVal
	case FloatType:
		return int64(s.floatVal)
	default:
		return 0
	}
}

func (s *Setting) GetFloat() float64 {
	switch s.typ {
	case FloatType:
		return s.floatVal
	case IntType, Int64Type:
		return float64(s.intVal)
	default:
		return 0
	}
}

func (s *Setting) GetString() string {
	if s.typ != StringType {
		return ""
	}
	return s.strVal
}

func (s *Setting) GetBool() bool {
	if s.typ != BoolType {
		return false
	}
	return s.boolVal
}

func (s *Setting) SetInt(v int) error {
	if s.typ != IntType {
		return fmt.Errorf("%w: set int on %s", ErrType, s.typ)
	}
	s.intVal = int64(v)
	return nil
}

func (s *Setting) SetInt64(v int64) error {
	if s.typ != Int64Type {
		return fmt.Errorf("%w: set int64 on %s", ErrType, s.typ)
	}
	s.intVal = v
	return nil
}

func (s *Setting) SetFloat(v float64) error {
	if s.typ != FloatType {
		return fmt.Errorf("%w: set float on %s", ErrType, s.typ)
	}
	s.floatVal = v
	return nil
}

func (s *Setting) SetString(v string) error {
	if s.typ != StringType {
		return fmt.Errorf("%w: set string on %s", ErrType, s.typ)
	}
	s.strVal = v
	return nil
}

func (s *Setting) SetBool(v bool) error {
	if s.typ != BoolType {
		return fmt.Errorf("%w: set bool on %s", ErrType, s.typ)
	}
	s.boolVal = v
	return nil
}

func (s *Setting) GetFormat() Format { return s.format }

// SetFormat sets the display format hint. HexFormat applies only to the
// integer kinds.
func (s *Setting) SetFormat(f Format) error {
	if f == HexFormat && !s.typ.IsInteger() {
		return fmt.Errorf("%w: hex format on %s", ErrType, s.typ)
	}
	s.format = f
	return nil
}
