package cmd

import (
	"errors"
	"fmt"
	"strings"

	"minhafinanca/internal/category"
	"minhafinanca/internal/cli"
	"minhafinanca/internal/money"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Lista as categorias de gasto",
	RunE:  runCategories,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <nome>",
	Short: "Cria uma categoria personalizada",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategoriesAdd,
}

func init() {
	categoriesCmd.AddCommand(categoriesAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	totals := make(map[string]int64)
	for _, g := range state.Ledger().GroupByCategory() {
		totals[g.Category] = g.Amount
	}

	active := state.Registry().Active().Name
	cats := state.Registry().All()
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		marker := " "
		if c.Name == active {
			marker = "*"
		}
		spent := ""
		if v, ok := totals[c.Name]; ok {
			spent = money.Format(v)
		}
		rows = append(rows, []string{marker, c.Name, c.Description, spent})
	}

	table := cli.Table{
		Title:   fmt.Sprintf("Categorias (%d)", len(cats)),
		Headers: []string{"", "Nome", "Descrição", "Gasto"},
		Rows:    rows,
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(table))
	fmt.Println("\n  * categoria ativa, usada por padrão em novos gastos")
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("informe o nome da categoria")
	}

	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	cat, err := state.AddCategory(name)
	if err != nil {
		if errors.Is(err, category.ErrDuplicate) {
			return fmt.Errorf("já existe uma categoria chamada %q", name)
		}
		return err
	}
	if cat == nil {
		return nil
	}
	if !flagQuiet {
		fmt.Printf("Categoria criada: %s\n", cat.Name)
	}
	return nil
}
