package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"devlog/internal/api"
	"devlog/internal/config"
	"devlog/internal/logging"
	"devlog/internal/logstore"
)

// Daemon owns the log store for the lifetime of the process and enforces
// single-instance execution.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *logstore.Store

	lockPath  string
	lock      *flock.Flock
	sessionID string

	apiSrv *apiServer

	running      atomic.Bool
	shutdown     chan struct{}
	shutdownOnce sync.Once
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, store *logstore.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		lockPath:  lockPath,
		lock:      flock.New(lockPath),
		sessionID: uuid.NewString(),
		shutdown:  make(chan struct{}),
	}, nil
}

// Start acquires the daemon lock and brings up the HTTP API when configured.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another devlog daemon instance is already running")
	}

	apiSrv, err := newAPIServer(d.cfg, d, d.logger)
	if err != nil {
		_ = d.lock.Unlock()
		return err
	}
	d.apiSrv = apiSrv
	if err := d.apiSrv.start(ctx); err != nil {
		_ = d.lock.Unlock()
		d.apiSrv = nil
		return err
	}

	d.running.Store(true)
	d.logger.Info("devlog daemon started",
		logging.String("log", d.store.Path()),
		logging.String("lock", d.lockPath),
		logging.String("session_id", d.sessionID))
	return nil
}

// Stop shuts down the HTTP API and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	d.apiSrv.stop()
	d.apiSrv = nil
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("devlog daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// RequestShutdown asks the hosting process to exit. Safe to call repeatedly.
func (d *Daemon) RequestShutdown() {
	d.shutdownOnce.Do(func() {
		close(d.shutdown)
	})
}

// ShutdownRequested is closed once a transport asks the process to exit.
func (d *Daemon) ShutdownRequested() <-chan struct{} {
	return d.shutdown
}

// Status reports daemon runtime information.
func (d *Daemon) Status() api.DaemonStatus {
	size, err := d.store.Size()
	if err != nil {
		size = 0
	}
	return api.DaemonStatus{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		SessionID:    d.sessionID,
		LogPath:      d.store.Path(),
		LockFilePath: d.lockPath,
		SocketPath:   d.cfg.SocketPath(),
		LogSizeBytes: size,
	}
}

// DefaultTailLines returns the configured line count for tail requests that
// omit one.
func (d *Daemon) DefaultTailLines() int {
	return d.cfg.Limits.DefaultTailLines
}

// Tail returns the last lines of the log. Invalid counts are rejected before
// the file is touched.
func (d *Daemon) Tail(lines int) (string, error) {
	if err := api.ValidateTailLines(lines, d.cfg.Limits.MaxTailLines); err != nil {
		return "", err
	}
	return d.store.Tail(lines)
}

// Write appends a timestamped entry and returns a confirmation message.
func (d *Daemon) Write(text string) (string, error) {
	if err := api.ValidateWriteText(text); err != nil {
		return "", err
	}
	if err := d.store.Append(text); err != nil {
		return "", err
	}
	return fmt.Sprintf("Entry appended to %s", d.store.Path()), nil
}

// Search returns log lines matching query, case-insensitively.
func (d *Daemon) Search(query string) (string, error) {
	if err := api.ValidateSearchQuery(query); err != nil {
		return "", err
	}
	return d.store.Search(query)
}
