// Package money formats and parses BRL amounts carried as integer centavos.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders centavos as a pt-BR currency string.
// e.g., 123456 -> "R$ 1.234,56", -950 -> "-R$ 9,50"
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(cents/100), cents%100)
}

// ParseDigits interprets a masked-input string as integer cents: every
// non-digit character is dropped and the remaining digit string is the cent
// value. Empty or unparseable input yields zero. Each keystroke re-derives
// the full amount from the accumulated digits, so partially formatted
// strings ("R$ 1.2", "1,2") never need to be parsed as decimals.
func ParseDigits(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return 0
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return cents
}

// Decimal renders centavos as a plain decimal string ("1234.56") for storage.
func Decimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseDecimal parses a stored decimal string back into centavos.
// Malformed input yields zero rather than an error.
func ParseDecimal(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= 0 {
		return int64(f*100 + 0.5)
	}
	return -int64(-f*100 + 0.5)
}

// groupThousands adds dot separators to an integer, pt-BR style.
// e.g., 1234567 -> "1.234.567"
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte('.')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
