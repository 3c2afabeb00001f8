package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mlworkbench/jobctl/pkg/client"
)

var cfgFile string

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jobctl",
		Short:        "jobctl sets up batches of jobs in an ML workbench project.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return client.LoadCommandlineArgsFromConfigFile(cfgFile)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jobctl.yaml)")
	client.AddWorkbenchApiConnectionCommandlineArgs(cmd)

	cmd.AddCommand(
		submitCmd(),
		validateCmd(),
		versionCmd(),
	)

	return cmd
}
