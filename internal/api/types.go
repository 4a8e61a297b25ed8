package api

// LogContent carries the text result of a tail or search call. A read that
// failed at the file level comes back with Error set instead of failing the
// call, so callers see the failure as ordinary output.
type LogContent struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteResult confirms an append. Error is set in-band when the write failed
// at the file level.
type WriteResult struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteBody is the HTTP request body for appending an entry.
type WriteBody struct {
	Text string `json:"text"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid"`
	SessionID    string `json:"sessionId,omitempty"`
	LogPath      string `json:"logPath"`
	LockFilePath string `json:"lockFilePath"`
	SocketPath   string `json:"socketPath,omitempty"`
	LogSizeBytes int64  `json:"logSizeBytes"`
}
