package tui

import (
	"errors"
	"fmt"
	"strings"

	"minhafinanca/internal/category"
	"minhafinanca/internal/config"
	"minhafinanca/internal/tui/components"
	"minhafinanca/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// contasState tracks the Contas tab: category browsing and creation.
type contasState struct {
	adding bool
	nameIn textinput.Model
}

func newContasState() contasState {
	ti := textinput.New()
	ti.Placeholder = "Nome da categoria"
	ti.CharLimit = 40
	ti.Width = 30
	return contasState{nameIn: ti}
}

func (a App) updateContasKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "n":
		a.contas.adding = true
		a.contas.nameIn.SetValue("")
		a.contas.nameIn.Focus()
		return a, a.contas.nameIn.Cursor.BlinkCmd(), true

	case "b":
		cfg, err := config.Load()
		if err != nil {
			a.flash = "Não foi possível ler a configuração"
			return a, nil, true
		}
		cfg.Notifications.Enabled = !cfg.Notifications.Enabled
		if err := config.Save(cfg); err != nil {
			a.flash = "Não foi possível salvar a configuração"
			return a, nil, true
		}
		a.notifyEnabled = cfg.Notifications.Enabled
		return a, nil, true

	case "s":
		if err := a.state.Logout(); err != nil {
			a.flash = "Não foi possível sair da conta"
			return a, nil, true
		}
		a.loginForm = newLoginForm(&a.loginVals)
		if a.width > 0 {
			a.loginForm = a.loginForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.loginForm.Init(), true
	}

	return a, nil, false
}

func (a App) updateContasInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			a.contas.adding = false
			return a, nil
		case "enter":
			name := strings.TrimSpace(a.contas.nameIn.Value())
			cat, err := a.state.AddCategory(name)
			if errors.Is(err, category.ErrDuplicate) {
				a.flash = "Já existe uma categoria com esse nome"
				return a, nil
			}
			if cat != nil {
				a.flash = ""
			}
			a.contas.adding = false
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.contas.nameIn, cmd = a.contas.nameIn.Update(msg)
	return a, cmd
}

func (a App) renderContasTab(cw int) string {
	t := theme.Active
	cats := a.state.Registry().All()
	active := a.state.Registry().Active()
	groups := a.state.Ledger().GroupByCategory()

	totals := make(map[string]int64, len(groups))
	for _, g := range groups {
		totals[g.Category] = g.Amount
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, cat := range cats {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("●")

		name := nameStyle.Render(fmt.Sprintf("%-16s", truncStr(cat.Name, 16)))
		if cat.Name == active.Name {
			name = activeStyle.Render(fmt.Sprintf("%-16s", truncStr(cat.Name, 16)))
		}

		spent := ""
		if total, ok := totals[cat.Name]; ok {
			spent = amountStyle.Render(formatBalance(total))
		}

		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			dot, name, descStyle.Render(fmt.Sprintf("%-22s", truncStr(cat.Description, 22))), spent))
	}

	b.WriteString("\n")
	if a.contas.adding {
		b.WriteString(a.contas.nameIn.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Enter para criar, Esc para cancelar"))
	} else {
		b.WriteString(dimStyle.Render("[n] nova categoria"))
	}

	card := components.ContentCard(fmt.Sprintf("Contas e Categorias (%d)", len(cats)), b.String(), cw)

	notif := "desativadas"
	notifStyle := dimStyle
	if a.notifyEnabled {
		notif = "ativadas"
		notifStyle = lipgloss.NewStyle().Foreground(t.Accent)
	}
	prefs := fmt.Sprintf("Notificações de orçamento: %s  %s\n%s",
		notifStyle.Render(notif),
		dimStyle.Render("[b] alternar"),
		dimStyle.Render("[s] sair da conta"))

	return card + "\n" + components.ContentCard("Preferências", prefs, cw)
}
