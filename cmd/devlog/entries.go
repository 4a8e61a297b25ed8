package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"devlog/internal/logstore"
)

// splitEntryLine separates a log line into its timestamp and text. Header and
// continuation lines have no timestamp and come back with an empty stamp.
func splitEntryLine(line string) (stamp, text string) {
	if strings.HasPrefix(line, "[") {
		if idx := strings.Index(line, "] "); idx > len(logstore.TimestampLayout) {
			return line[1:idx], line[idx+2:]
		}
	}
	return "", line
}

// renderEntryTable renders search output as a two-column table. It declines
// (ok=false) for the no-matches sentinel and for content with no timestamped
// lines, which reads better verbatim.
func renderEntryTable(content string) (string, bool) {
	if content == "" || content == logstore.NoMatchesSentinel {
		return "", false
	}

	rows := make([][]string, 0, 8)
	sawStamp := false
	for _, line := range strings.Split(content, "\n") {
		stamp, text := splitEntryLine(line)
		if stamp != "" {
			sawStamp = true
		}
		rows = append(rows, []string{stamp, text})
	}
	if !sawStamp {
		return "", false
	}
	return renderTable([]string{"Timestamp", "Entry"}, rows), true
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
