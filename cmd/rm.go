package cmd

import (
	"fmt"
	"strings"

	"minhafinanca/internal/money"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove um gasto pelo ID",
	Long:  "Remove um gasto. Aceita o ID completo ou um prefixo único, como exibido por 'minhafinanca expenses'.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	prefix := strings.TrimSpace(args[0])
	if prefix == "" {
		return fmt.Errorf("informe o ID do gasto")
	}

	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	var matches []string
	var matchedDesc string
	var matchedAmount int64
	for _, e := range state.Ledger().Entries() {
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
			matchedDesc = e.Description
			matchedAmount = e.Amount
		}
	}

	switch len(matches) {
	case 0:
		return fmt.Errorf("nenhum gasto com ID %q", prefix)
	case 1:
		if err := state.RemoveExpense(matches[0]); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("Gasto removido: %s  %s\n", money.Format(matchedAmount), matchedDesc)
		}
		return nil
	default:
		return fmt.Errorf("ID ambíguo %q corresponde a %d gastos, use mais caracteres", prefix, len(matches))
	}
}
