package literal

import (
	"math/bits"
	"strconv"
	"strings"
)

// FormatDouble renders v with the given precision, using a %g-style
// general format when sciOK is true and a %f-style fixed format
// otherwise. Unless the rendering carries an exponent, the result always
// contains a decimal point: ".0" is appended to whole numbers, and excess
// trailing zeros after the point are removed (the first digit after the
// point always remains). The output therefore never re-parses as an
// integer literal.
func FormatDouble(v float64, precision int, sciOK bool) string {
	var out string
	if sciOK {
		out = strconv.FormatFloat(v, 'g', precision, 64)
	} else {
		out = strconv.FormatFloat(v, 'f', precision, 64)
	}
	if strings.IndexByte(out, 'e') >= 0 {
		return out
	}
	dot := strings.IndexByte(out, '.')
	if dot < 0 {
		return out + ".0"
	}
	i := len(out)
	for i > dot+2 && out[i-1] == '0' {
		i--
	}
	return out[:i]
}

// FormatBinary renders v's two's-complement bit pattern starting at its
// highest set bit, so nonzero values carry no leading zeros. At most
// capacity-1 characters are produced; longer patterns are truncated
// silently. Zero renders as "0" rather than the empty string.
func FormatBinary(v int64, capacity int) string {
	if capacity < 2 {
		return ""
	}
	if v == 0 {
		return "0"
	}
	u := uint64(v)
	c := bits.LeadingZeros64(u)
	var b strings.Builder
	for i := 0; c < 64 && i < capacity-1; i++ {
		if u&(1<<(63-c)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		c++
	}
	return b.String()
}
