package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// loginValues holds the login form inputs.
type loginValues struct {
	Email    string
	Password string
}

// newLoginForm builds the welcome form. Credentials are local only; any
// non-empty pair is accepted, matching the offline-first model where the
// "account" is just this device.
func newLoginForm(vals *loginValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Minha Finança").
				Description("Controle de gastos pessoais, direto no terminal."),
			huh.NewInput().
				Title("E-mail").
				Placeholder("voce@exemplo.com").
				Value(&vals.Email),
			huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&vals.Password),
		),
	)
}

func (a App) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loginForm = f
	}

	if a.loginForm.State == huh.StateCompleted {
		_ = a.state.Login()
		a.loginForm = nil
		return a, nil
	}

	if a.loginForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}
