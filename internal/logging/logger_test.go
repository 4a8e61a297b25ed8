package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.With(String("component", "daemon")).Info("started", Int("pid", 42))

	line := buf.String()
	if !strings.Contains(line, "[daemon]") {
		t.Fatalf("component missing: %q", line)
	}
	if !strings.Contains(line, "started") || !strings.Contains(line, "pid=42") {
		t.Fatalf("unexpected console line: %q", line)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info leaked past warn level: %q", buf.String())
	}
	logger.Warn("loud")
	if buf.Len() == 0 {
		t.Fatal("warn suppressed")
	}
}

func TestNewJSONEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("started", String("socket", "/tmp/devlogd.sock"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("not JSON: %v: %q", err, buf.String())
	}
	if record["msg"] != "started" || record["socket"] != "/tmp/devlogd.sock" {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should never be enabled")
	}
}
