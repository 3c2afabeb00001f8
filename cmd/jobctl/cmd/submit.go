package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mlworkbench/jobctl/internal/jobctl"
	"github.com/mlworkbench/jobctl/internal/submission"
	"github.com/mlworkbench/jobctl/pkg/client"
)

func submitCmd() *cobra.Command {
	a := jobctl.New()
	cmd := &cobra.Command{
		Use:   "submit ./path/to/template",
		Short: "Submit the configured batch of jobs to the workbench",
		Long: `Submit jobs to the workbench project from a job configuration file.

The configuration is looked up as jobs_config.yaml in the given directory, its
config/ subdirectory, or the parent's config/ directory; the argument may also
point at the file itself. Example:

jobs:
  create_env:
    name: Create project environment
    script: create_environment.py
  train:
    name: Train model
    script: ${TEMPLATE_DIR}/scripts/model_training.py
    cpu: 2
    memory: 4
    parent_job_key: create_env
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir := "."
			if len(args) > 0 {
				baseDir = args[0]
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			startRuns, _ := cmd.Flags().GetBool("start")
			bootstrapKey, _ := cmd.Flags().GetString("bootstrap-key")

			a.Params.ApiConnectionDetails = client.ExtractCommandlineWorkbenchApiConnectionDetails()
			a.Params.SubmitDefaults = client.ExtractCommandlineSubmitDefaults()

			return a.Submit(baseDir, jobctl.SubmitOptions{
				DryRun:       dryRun,
				StartRuns:    startRuns,
				BootstrapKey: bootstrapKey,
			})
		},
	}
	cmd.Flags().Bool("dry-run", false, "translate the jobs and print the request payloads without submitting")
	cmd.Flags().Bool("start", false, "also start a run for each created job that has neither schedule nor parent")
	cmd.Flags().String("bootstrap-key", submission.DefaultBootstrapKey, "key of the bootstrap job that must be submitted first")
	return cmd
}
