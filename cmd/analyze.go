package cmd

import (
	"context"
	"fmt"
	"time"

	"minhafinanca/internal/coach"
	"minhafinanca/internal/config"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Gera a análise financeira com IA",
	Long: `Envia a renda e os gastos do mês para o Gemini e imprime a análise
do coach financeiro. Requer uma chave de API em GEMINI_API_KEY ou em
coach.api_key no arquivo de configuração.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	apiKey := config.GetAPIKey(cfg)
	if apiKey == "" {
		return fmt.Errorf("chave da API Gemini não configurada (defina GEMINI_API_KEY ou use 'minhafinanca config set coach.api_key <chave>')")
	}

	state, db, err := openState()
	if err != nil {
		return err
	}
	defer db.Close()

	if state.Ledger().Len() == 0 {
		return fmt.Errorf("adicione pelo menos um gasto antes de gerar a análise")
	}
	if state.Income() <= 0 {
		return fmt.Errorf("informe sua renda mensal antes de gerar a análise ('minhafinanca income <valor>')")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	client, err := coach.NewClient(ctx, apiKey, cfg.Coach.Model)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Println("Analisando suas finanças...")
	}

	analysis, err := client.Analyze(ctx, state.Income(), state.Ledger().Entries())
	if err != nil {
		return fmt.Errorf("%s", coach.RetryMessage)
	}

	fmt.Println()
	fmt.Println("── Análise Rápida ──")
	fmt.Println(analysis.QuickAnalysis)
	fmt.Println()
	fmt.Println("── Alerta ──")
	fmt.Println(analysis.Alert)
	fmt.Println()
	fmt.Println("── Plano de Ação ──")
	for i, step := range analysis.ActionPlan {
		fmt.Printf("%d. %s\n", i+1, step)
	}
	fmt.Println()
	fmt.Println("── Dica de Ouro ──")
	fmt.Println(analysis.GoldenTip)
	return nil
}
