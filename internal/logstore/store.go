package logstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// TimestampLayout is the entry timestamp format: UTC, second precision,
	// space-separated, no zone suffix.
	TimestampLayout = "2006-01-02 15:04:05"

	// LogFileName is the default file name used when resolving a log
	// location from a project directory.
	LogFileName = "development.log"

	// NoMatchesSentinel is returned by Search when no line matches.
	NoMatchesSentinel = "No matching entries found."

	// MinTailLines and MaxTailLines bound Tail requests.
	MinTailLines = 1
	MaxTailLines = 1000
	// DefaultTailLines is applied by transports when a request omits the
	// line count.
	DefaultTailLines = 20

	headerTitle       = "# Development Log"
	headerDescription = "Timestamped notes appended by development tooling."
	bootstrapText     = "Log created"
)

// Store provides append, tail, and search operations over a single log file.
// The path is resolved once at startup and injected; the store holds no other
// state.
type Store struct {
	path string
	now  func() time.Time
}

// ResolvePath determines where the log file lives. An explicit path always
// wins. Otherwise the legacy project-folder policy applies: when the working
// directory is itself named projectDir the log lives directly inside it, and
// in any other directory it lives under a projectDir subdirectory.
func ResolvePath(explicit, projectDir, cwd string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return trimmed
	}
	if filepath.Base(filepath.Clean(cwd)) == projectDir {
		return filepath.Join(cwd, LogFileName)
	}
	return filepath.Join(cwd, projectDir, LogFileName)
}

// Open binds a store to path and ensures the log file exists, creating it
// with its header and bootstrap entry when absent. Creation failure is
// returned to the caller and is expected to abort startup.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}
	if err := s.ensureExists(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the resolved log file location.
func (s *Store) Path() string {
	return s.path
}

// ensureExists creates the log file with header content iff it is absent.
// Calling it against an existing file is a no-op, so creation happens at most
// once over the file's lifetime.
func (s *Store) ensureExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat log file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory %q: %w", dir, err)
		}
	}

	// The header ends with the bootstrap entry and no trailing newline;
	// every append contributes its own leading newline.
	header := fmt.Sprintf("%s\n\n%s\n\n[%s] %s",
		headerTitle,
		headerDescription,
		s.timestamp(),
		bootstrapText,
	)
	if err := os.WriteFile(s.path, []byte(header), 0o644); err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	return nil
}

// Append records text as a single entry prefixed with the current UTC
// timestamp. The file is opened in append mode and never truncated.
func (s *Store) Append(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: entry text must not be empty", ErrInvalidInput)
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open for append: %v", ErrIO, err)
	}
	defer file.Close()

	entry := fmt.Sprintf("\n[%s] %s", s.timestamp(), text)
	if _, err := file.WriteString(entry); err != nil {
		return fmt.Errorf("%w: append entry: %v", ErrIO, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: flush entry: %v", ErrIO, err)
	}
	return nil
}

// Tail returns the last n lines of the log joined by newlines. Files shorter
// than n lines come back whole. n outside [MinTailLines, MaxTailLines] is
// rejected before any file access.
func (s *Store) Tail(n int) (string, error) {
	if n < MinTailLines || n > MaxTailLines {
		return "", fmt.Errorf("%w: lines must be between %d and %d, got %d",
			ErrInvalidInput, MinTailLines, MaxTailLines, n)
	}

	lines, err := readLastLines(s.path, n)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Search returns the log lines whose lowercase form contains the lowercased
// query, joined by newlines, or NoMatchesSentinel when nothing matches.
// Plain substring matching only.
func (s *Store) Search(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("%w: search query must not be empty", ErrInvalidInput)
	}

	needle := strings.ToLower(query)
	var matches []string
	err := scanLines(s.path, func(line string) {
		if strings.Contains(strings.ToLower(line), needle) {
			matches = append(matches, line)
		}
	})
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return NoMatchesSentinel, nil
	}
	return strings.Join(matches, "\n"), nil
}

// Size reports the current log file size in bytes for status output.
func (s *Store) Size() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("%w: stat: %v", ErrNotFound, err)
	}
	return info.Size(), nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(TimestampLayout)
}
