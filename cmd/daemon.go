package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"minhafinanca/internal/config"
	"minhafinanca/internal/daemon"
	"minhafinanca/internal/money"
	"minhafinanca/internal/notify"
	"minhafinanca/internal/store"

	"github.com/spf13/cobra"
)

type daemonRuntimeState struct {
	PID       int       `json:"pid"`
	Addr      string    `json:"addr"`
	StartedAt time.Time `json:"started_at"`
	DBPath    string    `json:"db_path"`
}

var (
	flagDaemonAddr         string
	flagDaemonInterval     time.Duration
	flagDaemonDetach       bool
	flagDaemonPIDFile      string
	flagDaemonLogFile      string
	flagDaemonEventsBuffer int
	flagDaemonChild        bool
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Executa o watcher de orçamento com API HTTP/SSE",
	Long: `Observa o banco de dados em segundo plano e emite eventos quando o
orçamento muda ou cruza os limites de alerta (70% e 90% da renda).
Expõe /healthz, /v1/status, /v1/events e /v1/stream (SSE).`,
	RunE: runDaemon,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostra o estado do watcher",
	RunE:  runDaemonStatus,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Encerra o watcher em execução",
	RunE:  runDaemonStop,
}

func init() {
	daemonCmd.PersistentFlags().StringVar(&flagDaemonAddr, "addr", "", "Endereço HTTP (padrão: 127.0.0.1:7877)")
	daemonCmd.PersistentFlags().DurationVar(&flagDaemonInterval, "interval", 0, "Intervalo de verificação (padrão: 30s)")
	daemonCmd.PersistentFlags().StringVar(&flagDaemonPIDFile, "pid-file", "", "Arquivo de PID (padrão: XDG data dir)")
	daemonCmd.PersistentFlags().StringVar(&flagDaemonLogFile, "log-file", "", "Arquivo de log no modo --detach")
	daemonCmd.PersistentFlags().IntVar(&flagDaemonEventsBuffer, "events-buffer", 200, "Máximo de eventos retidos em memória")

	daemonCmd.Flags().BoolVar(&flagDaemonDetach, "detach", false, "Executa em segundo plano")
	daemonCmd.Flags().BoolVar(&flagDaemonChild, "child", false, "Internal: mark detached child process")
	_ = daemonCmd.Flags().MarkHidden("child")

	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	rootCmd.AddCommand(daemonCmd)
}

// resolveDaemonSettings fills unset flags from config and XDG defaults.
func resolveDaemonSettings() (addr string, interval time.Duration, pidFile, logFile string, notifEnabled bool, err error) {
	cfg, err := config.Load()
	if err != nil {
		return "", 0, "", "", false, err
	}

	addr = flagDaemonAddr
	if addr == "" {
		addr = cfg.Daemon.ListenAddr
	}
	if addr == "" {
		addr = "127.0.0.1:7877"
	}

	interval = flagDaemonInterval
	if interval == 0 && cfg.Daemon.PollInterval != "" {
		interval, err = time.ParseDuration(cfg.Daemon.PollInterval)
		if err != nil {
			return "", 0, "", "", false, fmt.Errorf("daemon.poll_interval inválido: %w", err)
		}
	}
	if interval == 0 {
		interval = 30 * time.Second
	}

	dataDir, err := store.DataDir()
	if err != nil {
		return "", 0, "", "", false, err
	}
	pidFile = flagDaemonPIDFile
	if pidFile == "" {
		pidFile = filepath.Join(dataDir, "minhafinancad.pid")
	}
	logFile = flagDaemonLogFile
	if logFile == "" {
		logFile = filepath.Join(dataDir, "minhafinancad.log")
	}

	return addr, interval, pidFile, logFile, cfg.Notifications.Enabled, nil
}

func runDaemon(_ *cobra.Command, _ []string) error {
	if flagDaemonDetach && flagDaemonChild {
		return errors.New("invalid daemon launch mode")
	}

	if flagDaemonDetach {
		return startDaemonDetached()
	}

	return runDaemonForeground()
}

func startDaemonDetached() error {
	addr, _, pidFile, logFile, _, err := resolveDaemonSettings()
	if err != nil {
		return err
	}
	if err := ensureDaemonNotRunning(pidFile); err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	args := filterDetachArg(os.Args[1:])
	args = append(args, "--child")

	if err := os.MkdirAll(filepath.Dir(pidFile), 0o750); err != nil {
		return fmt.Errorf("create daemon directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o750); err != nil {
		return fmt.Errorf("create daemon log directory: %w", err)
	}

	logf, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open daemon log file: %w", err)
	}
	defer func() { _ = logf.Close() }()

	cmd := exec.Command(exe, args...)
	cmd.Stdout = logf
	cmd.Stderr = logf
	cmd.Stdin = nil
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start detached daemon: %w", err)
	}

	fmt.Printf("  Watcher iniciado (pid %d)\n", cmd.Process.Pid)
	fmt.Printf("  PID file: %s\n", pidFile)
	fmt.Printf("  API: http://%s/v1/status\n", addr)
	fmt.Printf("  Log: %s\n", logFile)
	return nil
}

func runDaemonForeground() error {
	addr, interval, pidFile, _, notifEnabled, err := resolveDaemonSettings()
	if err != nil {
		return err
	}
	if err := ensureDaemonNotRunning(pidFile); err != nil {
		return err
	}

	dbFile, err := dbPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(pidFile), 0o750); err != nil {
		return fmt.Errorf("create daemon directory: %w", err)
	}

	pid := os.Getpid()
	if err := writePID(pidFile, pid); err != nil {
		return err
	}
	defer func() { _ = os.Remove(pidFile) }()

	state := daemonRuntimeState{
		PID:       pid,
		Addr:      addr,
		StartedAt: time.Now(),
		DBPath:    dbFile,
	}
	_ = writeState(statePath(pidFile), state)
	defer func() { _ = os.Remove(statePath(pidFile)) }()

	cfg := daemon.Config{
		DBPath:       dbFile,
		Interval:     interval,
		Addr:         addr,
		EventsBuffer: flagDaemonEventsBuffer,
		Notifier:     notify.New(notify.FromConfig(notifEnabled)),
	}
	svc := daemon.New(cfg)

	fmt.Printf("  minhafinanca watcher em http://%s\n", addr)
	fmt.Printf("  Verificando %s a cada %s\n", dbFile, interval)
	fmt.Printf("  Encerre com: minhafinanca daemon stop\n")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runDaemonStatus(_ *cobra.Command, _ []string) error {
	addr, _, pidFile, _, _, err := resolveDaemonSettings()
	if err != nil {
		return err
	}

	pid, err := readPID(pidFile)
	if err != nil {
		fmt.Printf("  Watcher: parado (arquivo de PID não encontrado)\n")
		return nil
	}

	if !processAlive(pid) {
		fmt.Printf("  Watcher: arquivo de PID órfão (pid %d não está ativo)\n", pid)
		return nil
	}

	if st, err := readState(statePath(pidFile)); err == nil && st.Addr != "" {
		addr = st.Addr
	}

	fmt.Printf("  PID do watcher: %d\n", pid)
	fmt.Printf("  Endereço: http://%s\n", addr)

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status")
	if err != nil {
		fmt.Printf("  API: inacessível (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st daemon.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  API: resposta malformada (%v)\n", err)
		return nil
	}

	if st.LastPollAt.IsZero() {
		fmt.Printf("  Última verificação: pendente\n")
	} else {
		fmt.Printf("  Última verificação: %s\n", st.LastPollAt.Local().Format(time.RFC3339))
	}
	fmt.Printf("  Verificações: %d\n", st.PollCount)
	fmt.Printf("  Gastos: %d\n", st.Summary.Expenses)
	fmt.Printf("  Total gasto: %s\n", money.Format(st.Summary.TotalExpenses))
	fmt.Printf("  Uso da renda: %.1f%%\n", st.Summary.ProgressPercent)
	if st.LastError != "" {
		fmt.Printf("  Último erro: %s\n", st.LastError)
	}
	return nil
}

func runDaemonStop(_ *cobra.Command, _ []string) error {
	_, _, pidFile, _, _, err := resolveDaemonSettings()
	if err != nil {
		return err
	}

	pid, err := readPID(pidFile)
	if err != nil {
		return errors.New("o watcher não está em execução")
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("find daemon process: %w", err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("signal daemon process: %w", err)
	}

	deadline := time.Now().Add(8 * time.Second)
	for time.Now().Before(deadline) {
		if !processAlive(pid) {
			_ = os.Remove(pidFile)
			_ = os.Remove(statePath(pidFile))
			fmt.Printf("  Watcher encerrado (pid %d)\n", pid)
			return nil
		}
		time.Sleep(150 * time.Millisecond)
	}

	return fmt.Errorf("o watcher (pid %d) não encerrou a tempo", pid)
}

func filterDetachArg(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "--detach" || strings.HasPrefix(a, "--detach=") {
			continue
		}
		out = append(out, a)
	}
	return out
}

func ensureDaemonNotRunning(pidFile string) error {
	pid, err := readPID(pidFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if processAlive(pid) {
		return fmt.Errorf("o watcher já está em execução (pid %d)", pid)
	}
	_ = os.Remove(pidFile)
	_ = os.Remove(statePath(pidFile))
	return nil
}

func writePID(path string, pid int) error {
	return os.WriteFile(path, []byte(strconv.Itoa(pid)+"\n"), 0o600)
}

func readPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pidStr := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(pidStr)
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid pid in %s", path)
	}
	return pid, nil
}

func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}

func statePath(pidFile string) string {
	return pidFile + ".json"
}

func writeState(path string, st daemonRuntimeState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

func readState(path string) (daemonRuntimeState, error) {
	var st daemonRuntimeState
	data, err := os.ReadFile(path)
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, err
	}
	return st, nil
}
