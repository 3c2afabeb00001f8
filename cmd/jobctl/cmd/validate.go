package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlworkbench/jobctl/pkg/client/validation"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate ./path/to/jobs_config.yaml",
		Short: "Validate a job configuration file without submitting anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := validation.ValidateSubmitFile(args[0])
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			}
			return nil
		},
	}
	return cmd
}
