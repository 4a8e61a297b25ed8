package api

import (
	"fmt"
	"strings"

	"devlog/internal/logstore"
)

// ValidateTailLines rejects out-of-range line counts before any I/O. max is
// the configured boundary limit (reference: 1000); the store applies its own
// hard bound independently.
func ValidateTailLines(lines, max int) error {
	if max < 1 || max > logstore.MaxTailLines {
		max = logstore.MaxTailLines
	}
	if lines < logstore.MinTailLines || lines > max {
		return fmt.Errorf("%w: lines must be between %d and %d, got %d",
			logstore.ErrInvalidInput, logstore.MinTailLines, max, lines)
	}
	return nil
}

// ValidateWriteText rejects missing or blank entry text before any I/O.
func ValidateWriteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text is required and must not be empty", logstore.ErrInvalidInput)
	}
	return nil
}

// ValidateSearchQuery rejects missing or blank queries before any I/O.
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query is required and must not be empty", logstore.ErrInvalidInput)
	}
	return nil
}
