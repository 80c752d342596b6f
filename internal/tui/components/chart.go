package components

import (
	"fmt"
	"strings"

	"minhafinanca/internal/money"
	"minhafinanca/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CompositionEntry is one slice of the spending composition chart.
type CompositionEntry struct {
	Label  string
	Amount int64
	Color  lipgloss.Color
}

// CompositionChart renders horizontal bars showing how spending splits across
// categories, scaled against the largest entry.
func CompositionChart(entries []CompositionEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}
	t := theme.Active

	var peak, total int64
	for _, e := range entries {
		if e.Amount > peak {
			peak = e.Amount
		}
		total += e.Amount
	}
	if peak == 0 {
		peak = 1
	}
	if total == 0 {
		total = 1
	}

	labelW := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Label); w > labelW {
			labelW = w
		}
	}
	if labelW > 14 {
		labelW = 14
	}

	// amount column holds "R$ 99.999,99" comfortably
	amountW := 13
	barW := width - labelW - amountW - 10
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}

		label := e.Label
		if lipgloss.Width(label) > labelW {
			label = string([]rune(label)[:labelW-1]) + "…"
		}

		barLen := int(float64(e.Amount) / float64(peak) * float64(barW))
		if barLen < 1 && e.Amount > 0 {
			barLen = 1
		}
		barStyle := lipgloss.NewStyle().Foreground(e.Color).Background(t.Surface)
		bar := barStyle.Render(strings.Repeat("█", barLen)) +
			spaceStyle.Render(strings.Repeat(" ", barW-barLen))

		pct := float64(e.Amount) / float64(total) * 100

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(bar)
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(amountStyle.Render(fmt.Sprintf("%*s", amountW, money.Format(e.Amount))))
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(pctStyle.Render(fmt.Sprintf("%4.1f%%", pct)))
	}

	return b.String()
}
