package components

import (
	"strings"
	"testing"

	"minhafinanca/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("esmeralda-dark")

	shortCard := ContentCard("Saldo", "R$ 1.300,00", 22)
	tallCard := ContentCard("Gastos", "Mercado\nLazer\nTransporte\nContas Fixas\nSaúde", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))

	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", len(lines), tallLines)
	}
}

func TestMetricCardRow(t *testing.T) {
	theme.SetActive("esmeralda-dark")

	metrics := []Metric{
		{Label: "Renda Mensal", Value: "R$ 3.000,00", Hint: "[e]ditar"},
		{Label: "Saldo", Value: "-R$ 500,00", Tone: ToneNegative},
	}
	out := MetricCardRow(metrics, 60)

	for _, want := range []string{"Renda Mensal", "R$ 3.000,00", "[e]ditar", "-R$ 500,00"} {
		if !strings.Contains(out, want) {
			t.Errorf("MetricCardRow() missing %q", want)
		}
	}
}

func TestToneColor(t *testing.T) {
	theme.SetActive("esmeralda-dark")

	cases := []struct {
		tone Tone
		want lipgloss.Color
	}{
		{ToneNeutral, theme.Active.TextPrimary},
		{TonePositive, theme.Active.AccentBright},
		{ToneNegative, theme.Active.Red},
		{ToneWarn, theme.Active.Amber},
	}
	for _, tc := range cases {
		if got := tc.tone.color(theme.Active); got != tc.want {
			t.Errorf("tone %d color = %s, want %s", tc.tone, got, tc.want)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{80, 81, 82, 100} {
		widths := LayoutRow(total, 3)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != total {
			t.Errorf("LayoutRow(%d, 3) sums to %d, want %d", total, sum, total)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	cases := []struct {
		key  rune
		want int
	}{
		{'i', 0},
		{'c', 1},
		{'t', 2},
		{'z', -1},
	}
	for _, tc := range cases {
		if got := TabIdxByKey(tc.key); got != tc.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}

func TestCompositionChart(t *testing.T) {
	theme.SetActive("esmeralda-dark")

	entries := []CompositionEntry{
		{Label: "Mercado", Amount: 120000, Color: lipgloss.Color("#10b981")},
		{Label: "Transporte", Amount: 50000, Color: lipgloss.Color("#3b82f6")},
	}
	out := CompositionChart(entries, 60)

	if !strings.Contains(out, "Mercado") || !strings.Contains(out, "Transporte") {
		t.Error("CompositionChart() missing category labels")
	}
	if !strings.Contains(out, "R$ 1.200,00") {
		t.Error("CompositionChart() missing formatted amount")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("CompositionChart() rendered %d lines, want 2", len(lines))
	}
}

func TestCompositionChartEmpty(t *testing.T) {
	if out := CompositionChart(nil, 60); out != "" {
		t.Errorf("CompositionChart(nil) = %q, want empty", out)
	}
}

func TestColorForBudget(t *testing.T) {
	theme.SetActive("esmeralda-dark")

	if got := ColorForBudget(95); got != string(theme.Active.Red) {
		t.Errorf("ColorForBudget(95) = %s, want red", got)
	}
	if got := ColorForBudget(75); got != string(theme.Active.Amber) {
		t.Errorf("ColorForBudget(75) = %s, want amber", got)
	}
	if got := ColorForBudget(50); got != string(theme.Active.Accent) {
		t.Errorf("ColorForBudget(50) = %s, want accent", got)
	}
}
