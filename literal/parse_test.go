package literal

import (
	"math"
	"testing"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10", 10, true},
		{"0", 0, true},
		{"-12", -12, true},
		{"+7", 7, true},
		{"0x1A", 26, true},
		{"0X1f", 31, true},
		{"-0x10", -16, true},
		{"0755", 493, true},
		{"08", 0, false},
		{"0x", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"12a", 0, false},
		{"0xZ", 0, false},
		{" 10", 0, false},
		{"10 ", 0, false},
		{"9223372036854775807", math.MaxInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775808", math.MinInt64, true},
		{"-9223372036854775809", 0, false},
		{"0x7FFFFFFFFFFFFFFF", math.MaxInt64, true},
		{"0x8000000000000000", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInteger(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseInteger(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseInteger(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0x1F", 31},
		{"0X1f", 31},
		{"1F", 0},
		{"0x", 0},
		{"", 0},
		{"x1F", 0},
		// stops silently at the first non-hex character
		{"0x1FZ9", 31},
		{"0xFFFFFFFFFFFFFFFF", math.MaxUint64},
		// 65 bits: wraps modulo 2^64
		{"0x10000000000000000", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseHex64(tt.in); got != tt.want {
				t.Errorf("ParseHex64(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBin64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0b101", 5},
		{"0B11", 3},
		{"101", 0},
		{"0b", 0},
		{"", 0},
		// stops silently at the first non-bit character
		{"0b102", 2},
		{"0b1111111111111111111111111111111111111111111111111111111111111111",
			math.MaxUint64},
		// 65 bits: wraps modulo 2^64
		{"0b10000000000000000000000000000000000000000000000000000000000000000", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBin64(tt.in); got != tt.want {
				t.Errorf("ParseBin64(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
