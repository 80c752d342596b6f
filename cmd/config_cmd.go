package cmd

import (
	"fmt"
	"strconv"

	"minhafinanca/internal/config"
	"minhafinanca/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Exibe a configuração atual",
	RunE:  runConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set <chave> <valor>",
	Short: "Altera uma opção de configuração",
	Long: `Altera uma opção e grava o arquivo de configuração.

Chaves disponíveis:
  coach.api_key         chave da API Gemini
  coach.model           modelo Gemini (padrão: gemini-3-flash-preview)
  appearance.theme      esmeralda-dark, esmeralda-light ou terminal
  notifications.enabled true ou false
  daemon.listen_addr    endereço do watcher (padrão: 127.0.0.1:7877)
  daemon.poll_interval  intervalo de verificação, ex: 30s`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Arquivo: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: carregado")
	} else {
		fmt.Println("  Status: padrões (nenhum arquivo de configuração)")
	}
	fmt.Println()

	fmt.Println("  [Coach]")
	apiKey := config.GetAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    Chave da API: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    Chave da API: não configurada")
	}
	model := cfg.Coach.Model
	if model == "" {
		model = "gemini-3-flash-preview (padrão)"
	}
	fmt.Printf("    Modelo:       %s\n", model)
	fmt.Println()

	fmt.Println("  [Aparência]")
	fmt.Printf("    Tema: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Notificações]")
	fmt.Printf("    Habilitadas: %v\n", cfg.Notifications.Enabled)
	fmt.Println()

	fmt.Println("  [Watcher]")
	addr := cfg.Daemon.ListenAddr
	if addr == "" {
		addr = "127.0.0.1:7877 (padrão)"
	}
	fmt.Printf("    Endereço:  %s\n", addr)
	interval := cfg.Daemon.PollInterval
	if interval == "" {
		interval = "30s (padrão)"
	}
	fmt.Printf("    Intervalo: %s\n", interval)
	fmt.Println()

	fmt.Println("  Use `minhafinanca config set <chave> <valor>` para alterar.")
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "coach.api_key":
		cfg.Coach.APIKey = value
	case "coach.model":
		cfg.Coach.Model = value
	case "appearance.theme":
		known := false
		for _, t := range theme.All {
			if t.Name == value {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("tema desconhecido: %q (use esmeralda-dark, esmeralda-light ou terminal)", value)
		}
		cfg.Appearance.Theme = value
	case "notifications.enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("valor inválido para %s: %q (use true ou false)", key, value)
		}
		cfg.Notifications.Enabled = enabled
	case "daemon.listen_addr":
		cfg.Daemon.ListenAddr = value
	case "daemon.poll_interval":
		cfg.Daemon.PollInterval = value
	default:
		return fmt.Errorf("chave desconhecida: %q", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("%s = %s\n", key, value)
	}
	return nil
}

// maskAPIKey shows only the first and last few characters of a key.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
