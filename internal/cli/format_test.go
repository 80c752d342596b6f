package cli

import (
	"testing"
	"time"
)

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "0,0%"},
		{56.666, "56,7%"},
		{100, "100,0%"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.pct); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "01/09/2026" {
		t.Errorf("FormatDate() = %q, want 01/09/2026", got)
	}
	if got := MonthYear(d); got != "setembro de 2026" {
		t.Errorf("MonthYear() = %q, want setembro de 2026", got)
	}
}
