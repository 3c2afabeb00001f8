package jobctl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/mlworkbench/jobctl/internal/common"
	"github.com/mlworkbench/jobctl/internal/submission"
	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

// SubmitOptions control one orchestration run.
type SubmitOptions struct {
	// DryRun translates every job and prints the payloads without submitting.
	DryRun bool
	// StartRuns creates a run for each created job without schedule or parent.
	StartRuns bool
	// BootstrapKey names the job that must be submitted first and whose
	// failure aborts the run. Defaults to create_env.
	BootstrapKey string
}

// JobReport is the final state of one job in the run report.
type JobReport struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	State string `json:"state"`
	JobId string `json:"jobId,omitempty"`
	RunId string `json:"runId,omitempty"`
	Error string `json:"error,omitempty"`
}

// RunReport summarises an orchestration run.
type RunReport struct {
	Jobs      []JobReport `json:"jobs"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// Submit loads the job configuration under baseDir (or the file baseDir itself
// points at) and submits every job to the workbench, bootstrap job first.
//
// Exit-code policy: Submit returns an error, and hence the process exits
// nonzero, only for pre-submission failures (missing credentials, config not
// found or unparseable, unreachable API) and for a bootstrap job that failed
// to submit. Other per-job failures are reported and aggregated but do not
// fail the command.
func (a *App) Submit(baseDir string, opts SubmitOptions) error {
	if opts.BootstrapKey == "" {
		opts.BootstrapKey = submission.DefaultBootstrapKey
	}

	jobs, configPath, err := a.loadJobs(baseDir)
	if err != nil {
		return err
	}
	log.Infof("Loaded %d job(s) from %s", jobs.Len(), configPath)

	translator := submission.NewTranslator(a.Params.SubmitDefaults)
	if opts.DryRun {
		return a.dryRun(jobs, translator, opts.BootstrapKey)
	}

	if err := a.Params.ApiConnectionDetails.Validate(); err != nil {
		return err
	}

	api := a.jobAPI()
	ctx, cancel := common.ContextWithDefaultTimeout()
	err = api.Ping(ctx)
	cancel()
	if err != nil {
		return errors.WithMessage(err, "cannot reach the workbench API")
	}

	executor := &submission.Executor{
		Client:       api,
		ProjectId:    a.Params.ApiConnectionDetails.ProjectId,
		Translator:   translator,
		BootstrapKey: opts.BootstrapKey,
		StartRuns:    opts.StartRuns,
	}

	// The batch itself is unbounded; each API call is bounded by the client's
	// request timeout.
	outcome, runErr := executor.Run(context.Background(), jobs)
	a.printReport(jobs, outcome)

	if runErr != nil {
		return runErr
	}
	if agg := aggregateFailures(outcome.Failures); agg != nil {
		log.Warnf("Some jobs were not created: %s", agg)
	}
	return nil
}

func (a *App) loadJobs(baseDir string) (*domain.JobSet, string, error) {
	// Pointing directly at a configuration file skips candidate resolution.
	if info, err := os.Stat(baseDir); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(baseDir)
		if err != nil {
			return nil, "", &submission.ConfigParseError{Path: baseDir, Err: err}
		}
		jobs, err := submission.ParseJobs(data, baseDir)
		if err != nil {
			return nil, "", err
		}
		return jobs, baseDir, nil
	}
	return submission.NewLoader().Load(baseDir)
}

// dryRun prints the request each job would be submitted with. Parent links are
// shown against placeholder identifiers since nothing is actually created.
func (a *App) dryRun(jobs *domain.JobSet, translator *submission.Translator, bootstrapKey string) error {
	simulated := submission.SubmissionResult{}
	for _, key := range submission.Sequence(jobs, bootstrapKey) {
		job, _ := jobs.Get(key)
		if job == nil {
			log.Warnf("job %s has no definition, skipping", key)
			continue
		}
		req := translator.Translate(job, simulated)
		simulated[key] = fmt.Sprintf("dry-run-%s", key)

		b, err := yaml.Marshal(req)
		if err != nil {
			return errors.Wrapf(err, "error marshalling request for job %s", key)
		}
		fmt.Fprintf(a.Out, "---\n# job: %s\n%s", key, string(b))
	}
	return nil
}

func (a *App) printReport(jobs *domain.JobSet, outcome *submission.Outcome) {
	report := RunReport{}
	failed := map[string]string{}
	for _, failure := range outcome.Failures {
		failed[failure.Key] = failure.Err.Error()
	}

	for _, key := range jobs.Keys() {
		name := ""
		if job, _ := jobs.Get(key); job != nil {
			name = job.Name
		}
		if id, ok := outcome.Submitted[key]; ok {
			report.Jobs = append(report.Jobs, JobReport{
				Key: key, Name: name, State: "Succeeded", JobId: id, RunId: outcome.Started[key],
			})
			report.Succeeded++
		} else if detail, ok := failed[key]; ok {
			report.Jobs = append(report.Jobs, JobReport{Key: key, Name: name, State: "Failed", Error: detail})
			report.Failed++
		}
		// Jobs absent from both maps were never attempted (aborted run).
	}

	b, err := yaml.Marshal(report)
	if err != nil {
		log.Errorf("error marshalling run report: %s", err)
		return
	}
	fmt.Fprintf(a.Out, "%s", string(b))
	fmt.Fprintf(a.Out, "Submitted %d job(s), %d failure(s)\n", report.Succeeded, report.Failed)
}

func aggregateFailures(failures []submission.Failure) error {
	var agg *multierror.Error
	for _, failure := range failures {
		agg = multierror.Append(agg, errors.WithMessagef(failure.Err, "job %s", failure.Key))
	}
	return agg.ErrorOrNil()
}
