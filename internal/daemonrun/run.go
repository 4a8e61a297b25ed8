// Package daemonrun wires config, log store, daemon, and IPC into a blocking
// run loop shared by the devlogd binary and `devlog daemon run`.
package daemonrun

import (
	"context"
	"fmt"
	"os"

	"log/slog"

	"devlog/internal/config"
	"devlog/internal/daemon"
	"devlog/internal/ipc"
	"devlog/internal/logging"
	"devlog/internal/logstore"
)

// Run starts the daemon and blocks until ctx is canceled or a transport
// requests shutdown. An empty socketPath uses the config default. Log file
// initialization failure aborts startup.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, socketPath string) error {
	if cfg == nil {
		return fmt.Errorf("daemon run requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	path := logstore.ResolvePath(cfg.Paths.LogFile, cfg.Paths.ProjectDir, cwd)

	store, err := logstore.Open(path)
	if err != nil {
		return fmt.Errorf("initialize log file: %w", err)
	}

	d, err := daemon.New(cfg, store, logger)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		return err
	}

	if socketPath == "" {
		socketPath = cfg.SocketPath()
	}
	ipcServer, err := ipc.NewServer(ctx, socketPath, d, logger)
	if err != nil {
		return fmt.Errorf("start IPC server: %w", err)
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	select {
	case <-ctx.Done():
	case <-d.ShutdownRequested():
	}
	logger.Info("devlog daemon shutting down")
	return nil
}
