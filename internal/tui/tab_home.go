package tui

import (
	"fmt"
	"strings"
	"time"

	"minhafinanca/internal/cli"
	"minhafinanca/internal/model"
	"minhafinanca/internal/money"
	"minhafinanca/internal/tui/components"
	"minhafinanca/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type homeMode int

const (
	homeModeNormal homeMode = iota
	homeModeAddAmount
	homeModeAddDetail
	homeModeIncome
)

// homeState tracks the Início tab: the expense list cursor and the inline
// add-expense and edit-income entry forms.
type homeState struct {
	mode     homeMode
	amountIn textinput.Model
	descIn   textinput.Model
	incomeIn textinput.Model
	catIdx   int
	cursor   int
}

func newMoneyInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 14
	ti.Width = 20
	return ti
}

func newHomeState() homeState {
	desc := textinput.New()
	desc.Placeholder = "Descrição (opcional)"
	desc.CharLimit = 60
	desc.Width = 30

	return homeState{
		amountIn: newMoneyInput("R$ 0,00"),
		descIn:   desc,
		incomeIn: newMoneyInput("R$ 0,00"),
	}
}

func (a App) updateHomeKeys(key string) (tea.Model, tea.Cmd, bool) {
	entries := a.state.Ledger().Entries()

	switch key {
	case "a":
		a.home.mode = homeModeAddAmount
		a.home.amountIn.SetValue("")
		a.home.descIn.SetValue("")
		a.home.catIdx = 0
		active := a.state.Registry().Active()
		for i, cat := range a.state.Registry().All() {
			if cat.Name == active.Name {
				a.home.catIdx = i
				break
			}
		}
		a.home.amountIn.Focus()
		return a, a.home.amountIn.Cursor.BlinkCmd(), true
	case "e":
		a.home.mode = homeModeIncome
		a.home.incomeIn.SetValue("")
		a.home.incomeIn.Focus()
		return a, a.home.incomeIn.Cursor.BlinkCmd(), true
	case "d":
		if a.home.cursor < len(entries) {
			_ = a.state.RemoveExpense(entries[a.home.cursor].ID)
			if a.home.cursor > 0 {
				a.home.cursor--
			}
		}
		return a, nil, true
	case "j", "down":
		if a.home.cursor < len(entries)-1 {
			a.home.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.home.cursor > 0 {
			a.home.cursor--
		}
		return a, nil, true
	}
	return a, nil, false
}

func (a App) updateHomeInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			a.home.mode = homeModeNormal
			return a, nil
		case "enter":
			return a.commitHomeInput()
		}
	}

	var cmd tea.Cmd
	switch a.home.mode {
	case homeModeAddAmount:
		a.home.amountIn, cmd = a.home.amountIn.Update(msg)
		// Re-derive the masked value from the raw digits each keystroke.
		if cents := money.ParseDigits(a.home.amountIn.Value()); cents > 0 {
			a.home.amountIn.SetValue(money.Format(cents))
			a.home.amountIn.CursorEnd()
		}
	case homeModeAddDetail:
		if isKey {
			cats := a.state.Registry().All()
			switch keyMsg.String() {
			case "left", "shift+tab":
				a.home.catIdx = (a.home.catIdx - 1 + len(cats)) % len(cats)
				return a, nil
			case "right", "tab":
				a.home.catIdx = (a.home.catIdx + 1) % len(cats)
				return a, nil
			}
		}
		a.home.descIn, cmd = a.home.descIn.Update(msg)
	case homeModeIncome:
		a.home.incomeIn, cmd = a.home.incomeIn.Update(msg)
		if cents := money.ParseDigits(a.home.incomeIn.Value()); cents > 0 {
			a.home.incomeIn.SetValue(money.Format(cents))
			a.home.incomeIn.CursorEnd()
		}
	}
	return a, cmd
}

func (a App) commitHomeInput() (tea.Model, tea.Cmd) {
	switch a.home.mode {
	case homeModeAddAmount:
		if money.ParseDigits(a.home.amountIn.Value()) <= 0 {
			a.flash = "Informe um valor maior que zero"
			return a, nil
		}
		a.home.mode = homeModeAddDetail
		a.home.amountIn.Blur()
		a.home.descIn.Focus()
		return a, a.home.descIn.Cursor.BlinkCmd()

	case homeModeAddDetail:
		cats := a.state.Registry().All()
		if a.home.catIdx >= len(cats) {
			a.home.catIdx = 0
		}
		cat := cats[a.home.catIdx]

		// "Contas Fixas" carries an account detail, defaulting to "Geral".
		// Other categories keep the description exactly as typed.
		desc := strings.TrimSpace(a.home.descIn.Value())
		if desc == "" && cat.Name == "Contas Fixas" {
			desc = "Geral"
		}

		expense := model.Expense{
			ID:          uuid.NewString(),
			Category:    cat.Name,
			Description: desc,
			Amount:      money.ParseDigits(a.home.amountIn.Value()),
			Icon:        cat.IconKey,
			Date:        cli.FormatDate(time.Now()),
			AccountName: "Manual",
		}
		if err := a.state.AddExpense(expense); err != nil {
			a.flash = "Informe um valor maior que zero"
			return a, nil
		}
		_ = a.state.Registry().SetActive(cat.Name)
		a.home.mode = homeModeNormal
		a.home.cursor = 0
		return a, nil

	case homeModeIncome:
		_ = a.state.SetIncome(money.ParseDigits(a.home.incomeIn.Value()))
		a.home.mode = homeModeNormal
		return a, nil
	}

	a.home.mode = homeModeNormal
	return a, nil
}

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	summary := a.state.Summary()
	entries := a.state.Ledger().Entries()
	var b strings.Builder

	// Row 1: metric cards
	balanceTone := components.TonePositive
	if summary.Balance < 0 {
		balanceTone = components.ToneNegative
	}
	cards := []components.Metric{
		{Label: "Renda Mensal", Value: money.Format(a.state.Income()), Hint: "[e]ditar"},
		{Label: "Gastos do Mês", Value: money.Format(summary.TotalExpenses), Hint: fmt.Sprintf("%d lançamentos", len(entries))},
		{Label: "Saldo", Value: formatBalance(summary.Balance), Tone: balanceTone},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: budget usage bar
	barW := components.CardInnerWidth(cw) - 20
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard(
		"Uso da Renda",
		components.BudgetBar("Gasto", summary.ProgressPercent, 8, barW),
		cw,
	))
	b.WriteString("\n")

	// Row 3: composition chart
	groups := a.state.Ledger().GroupByCategory()
	if len(groups) > 0 {
		chartEntries := make([]components.CompositionEntry, len(groups))
		for i, g := range groups {
			chartEntries[i] = components.CompositionEntry{
				Label:  g.Category,
				Amount: g.Amount,
				Color:  a.categoryColor(g.Category),
			}
		}
		b.WriteString(components.ContentCard(
			"Composição dos Gastos",
			components.CompositionChart(chartEntries, components.CardInnerWidth(cw)),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 4: entry form or recent history
	switch a.home.mode {
	case homeModeAddAmount, homeModeAddDetail:
		b.WriteString(a.renderAddForm(cw))
	case homeModeIncome:
		b.WriteString(components.ContentCard(
			"Renda Mensal",
			a.home.incomeIn.View()+"\n"+
				lipgloss.NewStyle().Foreground(t.TextDim).Render("Enter para salvar, Esc para cancelar"),
			cw,
		))
	default:
		b.WriteString(a.renderHistory(cw, entries))
	}

	return b.String()
}

func (a App) renderAddForm(cw int) string {
	t := theme.Active
	cats := a.state.Registry().All()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	catStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Valor      "))
	b.WriteString(a.home.amountIn.View())
	b.WriteString("\n")

	if a.home.mode == homeModeAddDetail {
		b.WriteString(labelStyle.Render("Descrição  "))
		b.WriteString(a.home.descIn.View())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Categoria  "))
		for i, cat := range cats {
			name := cat.Name
			if i == a.home.catIdx {
				sel := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Bold(true)
				b.WriteString(sel.Render("[" + name + "]"))
			} else {
				b.WriteString(catStyle.Render(" " + truncStr(name, 10) + " "))
			}
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("←/→ muda a categoria, Enter salva, Esc cancela"))
	} else {
		b.WriteString(dimStyle.Render("Digite o valor, Enter para continuar, Esc para cancelar"))
	}

	return components.ContentCard("Novo Gasto", b.String(), cw)
}

func (a App) renderHistory(cw int, entries []model.Expense) string {
	t := theme.Active

	if len(entries) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("Nenhum gasto ainda. Pressione [a] para adicionar o primeiro.")
		return components.ContentCard("Histórico Recente", empty, cw)
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	maxRows := 8
	innerW := components.CardInnerWidth(cw)

	var b strings.Builder
	for i, e := range entries {
		if i >= maxRows {
			b.WriteString(rowStyle.Render(fmt.Sprintf("… e mais %d lançamentos", len(entries)-maxRows)))
			break
		}

		dot := lipgloss.NewStyle().Foreground(a.categoryColor(e.Category)).Render("●")
		label := fmt.Sprintf(" %-12s %-*s %s  ",
			truncStr(e.Category, 12),
			innerW-34, truncStr(e.Description, innerW-34),
			e.Date)
		amount := fmt.Sprintf("%12s", money.Format(e.Amount))

		var line string
		if i == a.home.cursor {
			line = dot + selStyle.Render(label) + amountStyle.Render(amount)
		} else {
			line = dot + rowStyle.Render(label) + amountStyle.Render(amount)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
		Render("[a]dicionar  [d]remover  [j/k]navegar"))

	return components.ContentCard("Histórico Recente", b.String(), cw)
}

func (a App) categoryColor(name string) lipgloss.Color {
	if cat, ok := a.state.Registry().Lookup(name); ok {
		return lipgloss.Color(cat.Color)
	}
	return theme.Active.Accent
}

func formatBalance(cents int64) string {
	return money.Format(cents)
}
