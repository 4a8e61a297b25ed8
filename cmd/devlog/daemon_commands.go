package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"devlog/internal/daemonctl"
	"devlog/internal/daemonrun"
	"devlog/internal/ipc"
	"devlog/internal/logging"
)

func newDaemonCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Manage the devlog daemon",
	}
	cmd.AddCommand(newDaemonRunCommand(ctx))
	cmd.AddCommand(newDaemonStartCommand(ctx))
	cmd.AddCommand(newDaemonStopCommand(ctx))
	return cmd
}

func newDaemonRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			socket := ""
			if ctx.socketFlag != nil {
				socket = strings.TrimSpace(*ctx.socketFlag)
			}
			return daemonrun.Run(runCtx, cfg, logger, socket)
		},
	}
}

func newDaemonStartCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Launch the daemon in the background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			socket, err := ctx.socketPath()
			if err != nil {
				return err
			}

			// Already running?
			if client, err := ctx.dialClient(); err == nil {
				defer client.Close()
				if status, err := client.Status(); err == nil && status.Running {
					fmt.Fprintln(cmd.OutOrStdout(), "daemon already running")
					return nil
				}
			}

			executable, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}

			configPath := ""
			if ctx.configFlag != nil {
				configPath = strings.TrimSpace(*ctx.configFlag)
			}
			if err := daemonctl.Launch(executable, daemonctl.LaunchOptions{
				SocketPath: socket,
				ConfigPath: configPath,
			}); err != nil {
				return err
			}

			client, err := daemonctl.WaitForClient(socket, 5*time.Second)
			if err != nil {
				return err
			}
			defer client.Close()

			status, err := client.Status()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "daemon started (pid %d, log %s)\n", status.PID, status.LogPath)
			return nil
		},
	}
}

func newDaemonStopCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Ask a running daemon to shut down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Stop()
				if err != nil {
					return err
				}
				if !resp.Stopping {
					return errors.New("daemon declined to stop")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "shutdown requested")
				return nil
			})
		},
	}
}
