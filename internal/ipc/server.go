package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"log/slog"

	"devlog/internal/daemon"
	"devlog/internal/logging"
	"devlog/internal/logstore"
)

// Server exposes log operations via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	svc := &service{daemon: d, logger: logger}
	if err := rpcServer.RegisterName("DevLog", svc); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
}

// Tail returns the last lines of the log. Invalid line counts fail the call;
// read failures are reported in resp.Error.
func (s *service) Tail(req TailRequest, resp *TailResponse) error {
	lines := s.daemon.DefaultTailLines()
	if req.Lines != nil {
		lines = *req.Lines
	}
	content, err := s.daemon.Tail(lines)
	return s.fillContent(content, err, &resp.Content, &resp.Error)
}

// Write appends a timestamped entry. Missing text fails the call; write
// failures are reported in resp.Error.
func (s *service) Write(req WriteRequest, resp *WriteResponse) error {
	message, err := s.daemon.Write(req.Text)
	if err != nil {
		if errors.Is(err, logstore.ErrInvalidInput) {
			return err
		}
		resp.Error = err.Error()
		return nil
	}
	resp.Message = message
	return nil
}

// Search returns log lines matching the query.
func (s *service) Search(req SearchRequest, resp *SearchResponse) error {
	content, err := s.daemon.Search(req.Query)
	return s.fillContent(content, err, &resp.Content, &resp.Error)
}

// Status reports daemon runtime information.
func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	*resp = s.daemon.Status()
	return nil
}

// Stop asks the daemon process to shut down.
func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.logger.Info("shutdown requested over IPC")
	s.daemon.RequestShutdown()
	resp.Stopping = true
	return nil
}

func (s *service) fillContent(content string, err error, outContent, outError *string) error {
	if err != nil {
		if errors.Is(err, logstore.ErrInvalidInput) {
			return err
		}
		*outError = err.Error()
		return nil
	}
	*outContent = content
	return nil
}
