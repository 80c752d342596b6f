// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the pt-BR day/month/year layout expense dates are stored in.
const DateLayout = "02/01/2006"

var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatPercent formats a 0-100 percentage with a pt-BR decimal comma.
// e.g., 56.666 -> "56,7%"
func FormatPercent(pct float64) string {
	return strings.Replace(fmt.Sprintf("%.1f%%", pct), ".", ",", 1)
}

// FormatDate renders a time as a pt-BR date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthYear renders a time as "setembro de 2026".
func MonthYear(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[t.Month()-1], t.Year())
}
