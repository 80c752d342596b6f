package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Appearance.Theme != "esmeralda-dark" {
		t.Errorf("Theme = %q, want esmeralda-dark", cfg.Appearance.Theme)
	}
	if !cfg.Notifications.Enabled {
		t.Error("Notifications.Enabled = false, want true")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Coach.APIKey = "test-key"
	cfg.Coach.Model = "gemini-3-flash-preview"
	cfg.Appearance.Theme = "esmeralda-light"
	cfg.Daemon.ListenAddr = "127.0.0.1:7877"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Coach.APIKey != "test-key" {
		t.Errorf("Coach.APIKey = %q, want test-key", got.Coach.APIKey)
	}
	if got.Appearance.Theme != "esmeralda-light" {
		t.Errorf("Theme = %q, want esmeralda-light", got.Appearance.Theme)
	}
	if got.Daemon.ListenAddr != "127.0.0.1:7877" {
		t.Errorf("Daemon.ListenAddr = %q", got.Daemon.ListenAddr)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := withTempConfigDir(t)

	cfgDir := filepath.Join(dir, "minhafinanca")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("not [valid toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil for malformed file, want parse error")
	}
}

func TestGetAPIKeyPrefersEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Coach.APIKey = "from-config"

	t.Setenv("GEMINI_API_KEY", "from-env")
	if got := GetAPIKey(cfg); got != "from-env" {
		t.Errorf("GetAPIKey() = %q, want from-env", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if got := GetAPIKey(cfg); got != "from-config" {
		t.Errorf("GetAPIKey() = %q, want from-config", got)
	}
}
