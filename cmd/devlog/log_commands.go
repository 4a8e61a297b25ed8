package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newWriteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "write <text>...",
		Short: "Append a timestamped entry to the development log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("entry text must not be empty")
			}

			resp, err := ctx.writeEntry(cmd.Context(), text)
			if err != nil {
				return err
			}
			if resp.Error != "" {
				return errors.New(resp.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
}

func newTailCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show the most recent log lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := ctx.tailContent(cmd.Context(), lines, cmd.Flags().Changed("lines"))
			if err != nil {
				return err
			}
			if resp.Error != "" {
				return errors.New(resp.Error)
			}
			if asJSON {
				return writeJSON(cmd, resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show (daemon default when omitted)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON output")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find log entries containing a substring (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := ctx.searchContent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if resp.Error != "" {
				return errors.New(resp.Error)
			}
			if asJSON {
				return writeJSON(cmd, resp)
			}
			if !plain && stdoutIsTerminal() {
				if rendered, ok := renderEntryTable(resp.Content); ok {
					fmt.Fprintln(cmd.OutOrStdout(), rendered)
					return nil
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON output")
	cmd.Flags().BoolVar(&plain, "plain", false, "Skip table rendering even on a terminal")
	return cmd
}
