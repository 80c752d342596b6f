package cmd

import (
	"fmt"
	"time"

	"minhafinanca/internal/cli"
	"minhafinanca/internal/money"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Resumo do orçamento do mês",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	sum := state.Summary()

	fmt.Println()
	fmt.Println(cli.RenderTitle("MINHA FINANÇA  " + cli.MonthYear(time.Now())))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Item", "Valor"},
		Rows: [][]string{
			{"Renda Mensal", money.Format(state.Income())},
			{"Gastos do Mês", money.Format(sum.TotalExpenses)},
			{"Saldo", money.Format(sum.Balance)},
			{"---"},
			{"Uso da Renda", cli.FormatPercent(sum.ProgressPercent)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Println()
	fmt.Println("  Uso da Renda")
	fmt.Println("  " + cli.RenderProgressBar(sum.ProgressPercent, 40))

	groups := state.Ledger().GroupByCategory()
	if len(groups) == 0 {
		if state.Ledger().Len() == 0 && !flagQuiet {
			fmt.Println()
			fmt.Println("  Nenhum gasto registrado ainda.")
			fmt.Println("  Use 'minhafinanca add <valor>' para começar.")
		}
		return nil
	}

	var peak int64
	for _, g := range groups {
		if g.Amount > peak {
			peak = g.Amount
		}
	}

	fmt.Println()
	fmt.Println("  Composição dos Gastos")
	for _, g := range groups {
		color := cli.ColorAccent
		if cat, ok := state.Registry().Lookup(g.Category); ok {
			color = lipgloss.Color(cat.Color)
		}
		fmt.Printf("%s  %s\n",
			cli.RenderHorizontalBar(g.Category, g.Amount, peak, 30, color),
			money.Format(g.Amount))
	}

	return nil
}
