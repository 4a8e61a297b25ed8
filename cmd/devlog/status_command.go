package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := ctx.daemonStatus(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, status)
			}

			rows := [][]string{
				{"Running", strconv.FormatBool(status.Running)},
				{"PID", strconv.Itoa(status.PID)},
				{"Log file", status.LogPath},
				{"Log size", fmt.Sprintf("%d bytes", status.LogSizeBytes)},
				{"Lock file", status.LockFilePath},
			}
			if status.SocketPath != "" {
				rows = append(rows, []string{"Socket", status.SocketPath})
			}
			if status.SessionID != "" {
				rows = append(rows, []string{"Session", status.SessionID})
			}

			if stdoutIsTerminal() {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", row[0], row[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON output")
	return cmd
}
