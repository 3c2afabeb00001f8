package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mlworkbench/jobctl/internal/jobctl"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client version information",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return jobctl.New().Version()
		},
	}
}
