package main

import (
	"github.com/spf13/cobra"
)

func newConfigCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.cfg.Write(cmd.OutOrStdout())
		},
	}
}
