package cmd

import (
	"fmt"

	"minhafinanca/internal/money"

	"github.com/spf13/cobra"
)

var incomeCmd = &cobra.Command{
	Use:   "income [valor]",
	Short: "Exibe ou define a renda mensal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIncome,
}

func init() {
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(args) == 0 {
		fmt.Printf("Renda Mensal: %s\n", money.Format(state.Income()))
		return nil
	}

	amount, err := parseAmountArg(args[0])
	if err != nil {
		return err
	}
	if err := state.SetIncome(amount); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("Renda Mensal definida: %s\n", money.Format(amount))
	}
	return nil
}
