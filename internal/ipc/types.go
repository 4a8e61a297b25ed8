package ipc

import "devlog/internal/api"

// TailRequest fetches the last lines of the log. A nil Lines applies the
// configured default; an explicit zero or negative value is invalid input.
type TailRequest struct {
	Lines *int `json:"lines,omitempty"`
}

// TailResponse carries tail output, or an in-band read error.
type TailResponse struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteRequest appends a timestamped entry to the log.
type WriteRequest struct {
	Text string `json:"text"`
}

// WriteResponse confirms an append, or reports an in-band write error.
type WriteResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SearchRequest finds log lines containing the query, case-insensitively.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse carries matching lines (or the no-matches sentinel), or an
// in-band read error.
type SearchResponse struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse mirrors the HTTP API status DTO for IPC callers.
type StatusResponse = api.DaemonStatus

// StopRequest asks the daemon process to shut down.
type StopRequest struct{}

// StopResponse indicates the shutdown request was accepted.
type StopResponse struct {
	Stopping bool `json:"stopping"`
}
