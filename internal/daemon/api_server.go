package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"devlog/internal/api"
	"devlog/internal/config"
	"devlog/internal/logging"
	"devlog/internal/logstore"
)

type apiServer struct {
	bind   string
	token  string
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) (*apiServer, error) {
	if cfg == nil || d == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}

	mux := http.NewServeMux()
	srv := &apiServer{
		bind:   bind,
		token:  cfg.Paths.APIToken,
		logger: logger,
		daemon: d,
	}

	mux.HandleFunc("/api/status", authMiddleware(srv.token, srv.handleStatus))
	mux.HandleFunc("/api/log/tail", authMiddleware(srv.token, srv.handleTail))
	mux.HandleFunc("/api/log/search", authMiddleware(srv.token, srv.handleSearch))
	mux.HandleFunc("/api/log/entries", authMiddleware(srv.token, srv.handleWrite))

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, s.daemon.Status())
}

func (s *apiServer) handleTail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	requestID := uuid.NewString()

	lines := s.daemon.DefaultTailLines()
	if raw := strings.TrimSpace(r.URL.Query().Get("lines")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("lines must be an integer, got %q", raw))
			return
		}
		lines = parsed
	}

	content, err := s.daemon.Tail(lines)
	s.log().Debug("tail request",
		logging.String("request_id", requestID),
		logging.Int("lines", lines))
	s.respondContent(w, content, err)
}

func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	requestID := uuid.NewString()

	query := r.URL.Query().Get("query")
	content, err := s.daemon.Search(query)
	s.log().Debug("search request",
		logging.String("request_id", requestID),
		logging.String("query", query))
	s.respondContent(w, content, err)
}

func (s *apiServer) handleWrite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	requestID := uuid.NewString()

	var body api.WriteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	message, err := s.daemon.Write(body.Text)
	s.log().Debug("write request", logging.String("request_id", requestID))
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, api.WriteResult{Message: message})
	case errors.Is(err, logstore.ErrInvalidInput):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		// File-level failures are reported in-band, not as protocol errors.
		s.writeJSON(w, http.StatusOK, api.WriteResult{Error: err.Error()})
	}
}

func (s *apiServer) respondContent(w http.ResponseWriter, content string, err error) {
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, api.LogContent{Content: content})
	case errors.Is(err, logstore.ErrInvalidInput):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.writeJSON(w, http.StatusOK, api.LogContent{Error: err.Error()})
	}
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String("component", "api-server"))
	}
	return logging.NewNop()
}
