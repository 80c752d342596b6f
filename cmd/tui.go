package cmd

import (
	"fmt"

	"minhafinanca/internal/coach"
	"minhafinanca/internal/config"
	"minhafinanca/internal/tui"
	"minhafinanca/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Abre a interface interativa",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	// The coach is optional: without a key the tab shows setup instructions.
	var coachClient *coach.Client
	if apiKey := config.GetAPIKey(cfg); apiKey != "" {
		coachClient, err = coach.NewClient(cmd.Context(), apiKey, cfg.Coach.Model)
		if err != nil {
			return err
		}
	}

	app := tui.NewApp(state, coachClient)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
