package cmd

import (
	"fmt"
	"strings"
	"time"

	"minhafinanca/internal/cli"
	"minhafinanca/internal/model"
	"minhafinanca/internal/money"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var flagAddCategory string

var addCmd = &cobra.Command{
	Use:   "add <valor> [descrição]",
	Short: "Registra um novo gasto",
	Long: `Registra um novo gasto no mês corrente.

O valor aceita notação brasileira ("1.250,00") ou decimal simples ("1250.00").
Sem --category o gasto vai para a categoria ativa, a última usada.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Categoria do gasto")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := parseAmountArg(args[0])
	if err != nil {
		return err
	}

	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	cat := state.Registry().Active()
	if flagAddCategory != "" {
		found, ok := state.Registry().Lookup(flagAddCategory)
		if !ok {
			return fmt.Errorf("categoria desconhecida: %q (veja 'minhafinanca categories')", flagAddCategory)
		}
		cat = found
	}

	// "Contas Fixas" carries an account detail, defaulting to "Geral".
	description := strings.TrimSpace(strings.Join(args[1:], " "))
	if description == "" && cat.Name == "Contas Fixas" {
		description = "Geral"
	}

	expense := model.Expense{
		ID:          uuid.NewString(),
		Category:    cat.Name,
		Description: description,
		Amount:      amount,
		Icon:        cat.IconKey,
		Date:        cli.FormatDate(time.Now()),
		AccountName: "Manual",
	}
	if err := state.AddExpense(expense); err != nil {
		return err
	}
	state.Registry().SetActive(cat.Name)

	if !flagQuiet {
		fmt.Printf("Gasto registrado: %s  %s (%s)\n", money.Format(amount), description, cat.Name)
	}
	return nil
}
