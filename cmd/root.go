// Package cmd implements the minhafinanca CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"minhafinanca/internal/money"
	"minhafinanca/internal/session"
	"minhafinanca/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "minhafinanca",
	Short: "Controle de gastos pessoais no terminal",
	Long:  "Acompanhe renda, gastos e categorias, com análise financeira por IA.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Caminho do banco de dados (padrão: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suprime mensagens informativas")
}

func dbPath() (string, error) {
	if flagDBPath != "" {
		return flagDBPath, nil
	}
	return store.DataPath()
}

// openState opens the store and restores the session. The caller must Close
// the returned store.
func openState() (*session.State, *store.Store, error) {
	path, err := dbPath()
	if err != nil {
		return nil, nil, err
	}

	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}

	state, err := session.Restore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return state, db, nil
}

// parseAmountArg converts a user-typed amount ("120,50", "120.50" or "120")
// into centavos.
func parseAmountArg(raw string) (int64, error) {
	normalized := strings.TrimSpace(raw)
	if strings.Contains(normalized, ",") {
		// pt-BR notation: dots group thousands, comma marks the decimals.
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}
	cents := money.ParseDecimal(normalized)
	if cents <= 0 {
		return 0, fmt.Errorf("valor inválido: %q", raw)
	}
	return cents, nil
}
