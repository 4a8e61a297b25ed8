package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var socketFlag string
	var configFlag string
	var apiFlag string
	var tokenFlag string

	ctx := newCommandContext(&socketFlag, &configFlag, &apiFlag, &tokenFlag)

	rootCmd := &cobra.Command{
		Use:           "devlog",
		Short:         "Development log CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&socketFlag, "socket", "", "Path to the devlog daemon socket")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "HTTP API address of a remote daemon (bypasses the socket)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "Bearer token for the HTTP API")

	rootCmd.AddCommand(newWriteCommand(ctx))
	rootCmd.AddCommand(newTailCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newDaemonCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
