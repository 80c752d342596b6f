package tui

import (
	"errors"
	"fmt"
	"strings"

	"minhafinanca/internal/session"
	"minhafinanca/internal/tui/components"
	"minhafinanca/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateCoachKeys(key string) (tea.Model, tea.Cmd, bool) {
	if key != "g" {
		return a, nil, false
	}

	if a.coach == nil {
		a.flash = "Configure a chave da API Gemini (minhafinanca config set coach.api_key)"
		return a, nil, true
	}

	// A result screen offers "gerar nova análise"; leave it before requesting.
	if a.state.Phase() == session.PhaseResult {
		a.state.Dismiss()
	}

	if err := a.state.RequestAnalysis(); err != nil {
		switch {
		case errors.Is(err, session.ErrNoExpenses):
			a.flash = "Adicione pelo menos um gasto antes de analisar"
		case errors.Is(err, session.ErrMissingIncome):
			a.flash = "Informe sua renda mensal antes de analisar"
		}
		return a, nil, true
	}

	return a, runAnalysisCmd(a.coach, a.state.Income(), a.state.Ledger().Entries()), true
}

func (a App) renderCoachTab(cw int) string {
	t := theme.Active

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dangerStyle := lipgloss.NewStyle().Foreground(t.Red)

	if a.coach == nil {
		body := mutedStyle.Render("O coach financeiro usa a API Gemini para analisar seus gastos.") + "\n\n" +
			dimStyle.Render("Defina GEMINI_API_KEY ou salve a chave na configuração:") + "\n" +
			dimStyle.Render("  minhafinanca config set coach.api_key SUA_CHAVE")
		return components.ContentCard("Coach IA", body, cw)
	}

	switch a.state.Phase() {
	case session.PhaseLoading:
		body := a.spinner.View() + mutedStyle.Render(" Analisando suas finanças...")
		return components.ContentCard("Coach IA", body, cw)

	case session.PhaseError:
		body := dangerStyle.Render(a.state.ErrorMessage()) + "\n\n" +
			dimStyle.Render("Pressione [g] para tentar novamente")
		return components.ContentCard("Coach IA", body, cw)

	case session.PhaseResult:
		return a.renderAnalysis(cw)
	}

	// Idle: show the last result if one exists, otherwise the call to action.
	if a.state.Analysis() != nil {
		return a.renderAnalysis(cw)
	}

	body := mutedStyle.Render("Receba uma análise personalizada do seu cenário financeiro.") + "\n\n" +
		accentStyle.Render("Pressione [g] para gerar a análise")
	return components.ContentCard("Coach IA", body, cw)
}

func (a App) renderAnalysis(cw int) string {
	t := theme.Active
	analysis := a.state.Analysis()
	if analysis == nil {
		return ""
	}

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	warnStyle := lipgloss.NewStyle().Foreground(t.Amber)
	tipStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Italic(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	innerW := components.CardInnerWidth(cw)

	var plan strings.Builder
	for i, step := range analysis.ActionPlan {
		fmt.Fprintf(&plan, "%d. %s", i+1, wrapText(step, innerW-3))
		if i < len(analysis.ActionPlan)-1 {
			plan.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Análise Rápida",
		textStyle.Render(wrapText(analysis.QuickAnalysis, innerW)), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Alerta",
		warnStyle.Render(wrapText(analysis.Alert, innerW)), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Plano de Ação",
		textStyle.Render(plan.String()), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Dica de Ouro",
		tipStyle.Render(wrapText(analysis.GoldenTip, innerW)), cw))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" [g] gerar nova análise"))

	return b.String()
}

// wrapText soft-wraps prose onto lines of at most width columns.
func wrapText(s string, width int) string {
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(s) {
		wl := len([]rune(word))
		if lineLen > 0 && lineLen+1+wl > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += wl
	}
	return b.String()
}
