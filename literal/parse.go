package literal

import (
	"fmt"
	"math"
)

// ParseInteger interprets s as a C-style integer literal: a leading "0x"
// or "0X" selects base 16, a leading "0" selects base 8, anything else is
// decimal. An optional single +/- sign is accepted. The whole input must
// be consumed and the value must fit in an int64; otherwise the result is
// (0, ErrInteger). Note that "08" fails: 8 is not an octal digit, so the
// parse stops early and leaves trailing input.
func ParseInteger(s string) (int64, error) {
	i := 0
	n := len(s)
	neg := false
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	if i == n {
		return 0, fmt.Errorf("%w: %q", ErrInteger, s)
	}
	base := uint64(10)
	if s[i] == '0' {
		if i+1 < n && (s[i+1] == 'x' || s[i+1] == 'X') {
			base = 16
			i += 2
			if i == n {
				// "0x" alone: the 0 parses, the x is trailing input
				return 0, fmt.Errorf("%w: %q", ErrInteger, s)
			}
		} else {
			base = 8
		}
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	var v uint64
	for ; i < n; i++ {
		d := digitVal(s[i])
		if d < 0 || uint64(d) >= base {
			return 0, fmt.Errorf("%w: %q", ErrInteger, s)
		}
		if v > (limit-uint64(d))/base {
			return 0, fmt.Errorf("%w: out of range %q", ErrInteger, s)
		}
		v = v*base + uint64(d)
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// ParseHex64 reads a "0x"-prefixed hexadecimal literal, accumulating
// nibbles until the first non-hex character. There is no error channel:
// a missing prefix or malformed tail yields a value indistinguishable
// from a small or zero literal, and values wider than 64 bits wrap.
func ParseHex64(s string) uint64 {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0
	}
	var v uint64
	for i := 2; i < len(s); i++ {
		d := digitVal(s[i])
		if d < 0 {
			break
		}
		v <<= 4
		v |= uint64(d)
	}
	return v
}

// ParseBin64 reads a "0b"-prefixed binary literal. Same silent contract
// as ParseHex64: no prefix or an early non-bit character is not an error,
// and overlong input wraps modulo 2^64.
func ParseBin64(s string) uint64 {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'b' && s[1] != 'B') {
		return 0
	}
	var v uint64
	for i := 2; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			break
		}
		v <<= 1
		v |= uint64(s[i] - '0')
	}
	return v
}
