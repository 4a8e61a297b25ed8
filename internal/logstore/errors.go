package logstore

import "errors"

// Sentinel errors used for classification at the transport boundary. Callers
// wrap these with fmt.Errorf("%w: ...") and classify with errors.Is.
var (
	// ErrInvalidInput marks a request rejected before any file access.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a log file that cannot be read at call time.
	ErrNotFound = errors.New("log file not found")
	// ErrIO marks a read or write that failed against an existing log file.
	ErrIO = errors.New("log file i/o error")
)
