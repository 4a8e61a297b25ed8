package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devlog/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != missing {
		t.Fatalf("resolved path: want %q, got %q", missing, resolved)
	}
	if cfg.Paths.ProjectDir != "devlog" {
		t.Fatalf("unexpected project_dir default: %q", cfg.Paths.ProjectDir)
	}
	if cfg.Limits.DefaultTailLines != 20 || cfg.Limits.MaxTailLines != 1000 {
		t.Fatalf("unexpected limit defaults: %+v", cfg.Limits)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
log_file = "` + filepath.Join(dir, "notes.log") + `"
data_dir = "` + filepath.Join(dir, "data") + `"

[limits]
default_tail_lines = 50
max_tail_lines = 500

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Paths.LogFile != filepath.Join(dir, "notes.log") {
		t.Fatalf("log_file not honored: %q", cfg.Paths.LogFile)
	}
	if cfg.Limits.DefaultTailLines != 50 || cfg.Limits.MaxTailLines != 500 {
		t.Fatalf("limits not honored: %+v", cfg.Limits)
	}
	// Formats are lowercased during normalization.
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadLimits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[limits]
default_tail_lines = 2000
max_tail_lines = 1000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for default > max")
	} else if !strings.Contains(err.Error(), "default_tail_lines") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for unsupported format")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := config.ExpandPath("~/logs/dev.log")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "logs", "dev.log") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after creation")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestRuntimePaths(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = "/tmp/devlog-data"
	if got := cfg.SocketPath(); got != "/tmp/devlog-data/devlogd.sock" {
		t.Fatalf("socket path: %q", got)
	}
	if got := cfg.LockPath(); got != "/tmp/devlog-data/devlogd.lock" {
		t.Fatalf("lock path: %q", got)
	}
}
