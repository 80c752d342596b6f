package cmd

import (
	"fmt"

	"minhafinanca/internal/cli"
	"minhafinanca/internal/money"

	"github.com/spf13/cobra"
)

var flagExpensesLimit int

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Lista os gastos registrados",
	RunE:  runExpenses,
}

func init() {
	expensesCmd.Flags().IntVarP(&flagExpensesLimit, "limit", "n", 20, "Número máximo de gastos exibidos")
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	entries := state.Ledger().Entries()
	if len(entries) == 0 {
		fmt.Println("\n  Nenhum gasto registrado ainda.")
		return nil
	}

	shown := entries
	if flagExpensesLimit > 0 && len(shown) > flagExpensesLimit {
		shown = shown[:flagExpensesLimit]
	}

	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Date,
			e.Category,
			e.Description,
			money.Format(e.Amount),
		})
	}

	table := cli.Table{
		Title:   fmt.Sprintf("Gastos (%d)", len(entries)),
		Headers: []string{"ID", "Data", "Categoria", "Descrição", "Valor"},
		Rows:    rows,
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(table))

	fmt.Printf("\n  Total: %s\n", money.Format(state.Ledger().Total()))
	if len(shown) < len(entries) {
		fmt.Printf("  Exibindo %d de %d (use --limit para ver mais)\n", len(shown), len(entries))
	}
	return nil
}

// shortID truncates a UUID to its first block, enough to pass to rm.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
