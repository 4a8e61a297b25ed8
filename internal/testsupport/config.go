// Package testsupport provides shared scaffolding for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"devlog/internal/config"
	"devlog/internal/logstore"
)

// NewConfig returns a validated config rooted in a per-test temp directory.
// The HTTP API is disabled by default; tests that need it set Paths.APIBind.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()

	cfg := config.Default()
	cfg.Paths.LogFile = filepath.Join(base, "development.log")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.APIBind = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// MustOpenStore opens the log store at the config's log file location.
func MustOpenStore(t *testing.T, cfg *config.Config) *logstore.Store {
	t.Helper()
	store, err := logstore.Open(cfg.Paths.LogFile)
	if err != nil {
		t.Fatalf("logstore.Open: %v", err)
	}
	return store
}
