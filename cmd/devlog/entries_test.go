package main

import (
	"strings"
	"testing"

	"devlog/internal/logstore"
)

func TestSplitEntryLine(t *testing.T) {
	stamp, text := splitEntryLine("[2026-08-29 10:15:00] Fixed bug #123")
	if stamp != "2026-08-29 10:15:00" {
		t.Fatalf("unexpected stamp: %q", stamp)
	}
	if text != "Fixed bug #123" {
		t.Fatalf("unexpected text: %q", text)
	}

	stamp, text = splitEntryLine("# Development Log")
	if stamp != "" || text != "# Development Log" {
		t.Fatalf("header line mangled: stamp=%q text=%q", stamp, text)
	}

	// Bracketed text that is not a timestamp stays in the text column.
	stamp, text = splitEntryLine("[wip] not an entry")
	if stamp != "" || text != "[wip] not an entry" {
		t.Fatalf("short bracket treated as stamp: stamp=%q text=%q", stamp, text)
	}
}

func TestRenderEntryTable(t *testing.T) {
	content := "[2026-08-29 10:15:00] first\n[2026-08-29 10:16:00] second"
	rendered, ok := renderEntryTable(content)
	if !ok {
		t.Fatal("expected table rendering")
	}
	if !strings.Contains(rendered, "Timestamp") || !strings.Contains(rendered, "second") {
		t.Fatalf("unexpected table: %q", rendered)
	}
}

func TestRenderEntryTableDeclines(t *testing.T) {
	if _, ok := renderEntryTable(logstore.NoMatchesSentinel); ok {
		t.Fatal("sentinel should not be rendered as a table")
	}
	if _, ok := renderEntryTable("just some text"); ok {
		t.Fatal("content without entries should not be rendered as a table")
	}
	if _, ok := renderEntryTable(""); ok {
		t.Fatal("empty content should not be rendered as a table")
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"write", "tail", "search", "status", "daemon", "config"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("command %q not registered", name)
		}
	}
}
