package money

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{950, "R$ 9,50"},
		{123456, "R$ 1.234,56"},
		{170000, "R$ 1.700,00"},
		{100000000, "R$ 1.000.000,00"},
		{-950, "-R$ 9,50"},
		{-123456, "-R$ 1.234,56"},
	}
	for _, tt := range tests {
		if got := Format(tt.cents); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"", 0},
		{"R$ 0,00", 0},
		{"abc", 0},
		{"1", 1},
		{"12", 12},
		{"123", 123},
		{"R$ 1.234,56", 123456},
		{"1234.56", 123456},
		{"007", 7},
		{"R$ 12,3", 123},
	}
	for _, tt := range tests {
		if got := ParseDigits(tt.raw); got != tt.want {
			t.Errorf("ParseDigits(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// Parsing the digits of a formatted amount must recover the amount.
	for _, cents := range []int64{0, 1, 99, 100, 12345, 300000, 999999999} {
		if got := ParseDigits(Format(cents)); got != cents {
			t.Errorf("ParseDigits(Format(%d)) = %d, want %d", cents, got, cents)
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 5, 950, 300050, -1250} {
		if got := ParseDecimal(Decimal(cents)); got != cents {
			t.Errorf("ParseDecimal(Decimal(%d)) = %d, want %d", cents, got, cents)
		}
	}
}

func TestParseDecimalMalformed(t *testing.T) {
	for _, s := range []string{"", "garbage", "1.2.3", "NaN"} {
		if got := ParseDecimal(s); got != 0 {
			t.Errorf("ParseDecimal(%q) = %d, want 0", s, got)
		}
	}
}
