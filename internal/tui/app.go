// Package tui provides the interactive Bubble Tea interface for minhafinanca.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"minhafinanca/internal/cli"
	"minhafinanca/internal/coach"
	"minhafinanca/internal/config"
	"minhafinanca/internal/model"
	"minhafinanca/internal/session"
	"minhafinanca/internal/tui/components"
	"minhafinanca/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// AnalysisMsg is sent when the coach analysis completes.
type AnalysisMsg struct {
	Analysis *model.Analysis
}

// AnalysisErrMsg is sent when the coach analysis fails.
type AnalysisErrMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	state *session.State
	coach *coach.Client

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string // transient one-line feedback

	// Per-tab state
	home   homeState
	contas contasState

	// Login form (huh), shown until the session is authenticated
	loginForm *huh.Form
	loginVals loginValues

	notifyEnabled bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140

	minContentHeight = 5
)

// NewApp creates a new TUI app model. coachClient may be nil when no API key
// is configured; the Coach IA tab then explains how to set one.
func NewApp(state *session.State, coachClient *coach.Client) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	cfg, _ := config.Load()

	a := App{
		state:         state,
		coach:         coachClient,
		home:          newHomeState(),
		contas:        newContasState(),
		notifyEnabled: cfg.Notifications.Enabled,
		spinner:       sp,
	}

	if !state.LoggedIn() {
		a.loginForm = newLoginForm(&a.loginVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	if a.loginForm != nil {
		cmds = append(cmds, a.loginForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.loginForm != nil {
			a.loginForm = a.loginForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Login form intercepts all keys
		if a.loginForm != nil {
			return a.updateLoginForm(msg)
		}

		a.flash = ""

		// Text entry modes intercept keys before tab shortcuts
		if a.activeTab == 0 && a.home.mode != homeModeNormal {
			return a.updateHomeInput(msg)
		}
		if a.activeTab == 2 && a.contas.adding {
			return a.updateContasInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab-local keys
		switch a.activeTab {
		case 0:
			if m, cmd, handled := a.updateHomeKeys(key); handled {
				return m, cmd
			}
		case 1:
			if m, cmd, handled := a.updateCoachKeys(key); handled {
				return m, cmd
			}
		case 2:
			if m, cmd, handled := a.updateContasKeys(key); handled {
				return m, cmd
			}
		}

		// Tab navigation
		switch key {
		case "i":
			a.activeTab = 0
		case "c":
			a.activeTab = 1
		case "t":
			a.activeTab = 2
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case AnalysisMsg:
		a.state.CompleteAnalysis(msg.Analysis)
		return a, nil

	case AnalysisErrMsg:
		a.state.FailAnalysis(coach.RetryMessage)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Forward unhandled messages to active inputs (cursor blinks, etc.)
	if a.loginForm != nil {
		return a.updateLoginForm(msg)
	}
	if a.activeTab == 0 && a.home.mode != homeModeNormal {
		return a.updateHomeInput(msg)
	}
	if a.activeTab == 2 && a.contas.adding {
		return a.updateContasInput(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.loginForm != nil {
		return a.loginForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal muito estreito (%d colunas)\n\n  minhafinanca precisa de pelo menos %d colunas.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Atalhos de Teclado"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navegação"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"i c t", "Ir para a aba"},
		{"← →", "Aba anterior / seguinte"},
		{"j k", "Navegar nas listas"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Ações"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Adicionar gasto (Início)"},
		{"e", "Editar renda mensal (Início)"},
		{"d", "Remover gasto selecionado"},
		{"g", "Gerar análise (Coach IA)"},
		{"n", "Nova categoria (Contas)"},
		{"b", "Alternar notificações (Contas)"},
		{"s", "Sair da conta (Contas)"},
		{"Esc", "Voltar / Cancelar"},
		{"?", "Mostrar / esconder ajuda"},
		{"q", "Sair"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Pressione qualquer tecla para fechar"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + month pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") + pillAccentStyle.Render(cli.MonthYear(time.Now()))
	if a.flash != "" {
		pill += pillStyle.Render(" │ ") +
			lipgloss.NewStyle().Foreground(t.Amber).Background(t.Surface).Render(a.flash)
	}
	pill += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar with live balance
	statusBar := components.RenderStatusBar(w, formatBalance(a.state.Summary().Balance))

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderHomeTab(cw)
	case 1:
		content = a.renderCoachTab(cw)
	case 2:
		content = a.renderContasTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically and fill the whole terminal
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// runAnalysisCmd calls the coach in a background goroutine.
func runAnalysisCmd(client *coach.Client, income int64, expenses []model.Expense) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		analysis, err := client.Analyze(ctx, income, expenses)
		if err != nil {
			return AnalysisErrMsg{Err: err}
		}
		return AnalysisMsg{Analysis: analysis}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
