package submission

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mlworkbench/jobctl/pkg/client"
	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

// Failure records one job that could not be submitted.
type Failure struct {
	Key string
	Err error
}

// Outcome is the run report for one orchestration: identifiers for the jobs
// that were created and the failures encountered.
type Outcome struct {
	// Submitted maps job keys to platform-assigned job identifiers.
	Submitted SubmissionResult
	// Started maps job keys to run identifiers, when run starting was requested.
	Started map[string]string
	Failures []Failure
}

// Executor walks the sequenced job list and submits one job at a time.
// Submission is strictly sequential: a parent's identifier must be recorded
// before a dependent job is translated, so order is a correctness requirement.
type Executor struct {
	Client       client.JobAPI
	ProjectId    string
	Translator   *Translator
	BootstrapKey string
	// StartRuns also creates a run for each created job that has neither a
	// schedule nor a parent.
	StartRuns bool
}

// Run submits every job in sequence order. A failed submission is logged and
// recorded, and the loop continues with the next job; a failed bootstrap job
// aborts the run with a BootstrapFailureError. The returned Outcome is valid
// in both cases.
func (e *Executor) Run(ctx context.Context, jobs *domain.JobSet) (*Outcome, error) {
	outcome := &Outcome{
		Submitted: SubmissionResult{},
		Started:   map[string]string{},
	}

	for _, key := range Sequence(jobs, e.BootstrapKey) {
		job, _ := jobs.Get(key)
		if job == nil {
			// A key declared with a null body parses to a nil definition.
			err := errors.Errorf("job %s has no definition", key)
			log.Errorf("Error creating job %s: %s", key, err)
			outcome.Failures = append(outcome.Failures, Failure{Key: key, Err: err})
			if key == e.BootstrapKey {
				return outcome, &BootstrapFailureError{Key: key, Err: err}
			}
			continue
		}

		req := e.Translator.Translate(job, outcome.Submitted)
		log.Infof("Creating job %s (%s)", key, req.Name)

		created, err := e.Client.CreateJob(ctx, e.ProjectId, req)
		if err != nil {
			log.Errorf("Error creating job %s: %s", key, err)
			outcome.Failures = append(outcome.Failures, Failure{Key: key, Err: err})
			if key == e.BootstrapKey {
				return outcome, &BootstrapFailureError{Key: key, Err: err}
			}
			continue
		}

		outcome.Submitted[key] = created.ID
		log.Infof("Created job %s with id %s", key, created.ID)

		if e.StartRuns && req.Schedule == "" && req.ParentJobID == "" {
			run, err := e.Client.CreateJobRun(ctx, e.ProjectId, created.ID)
			if err != nil {
				// The job itself exists; a failed start is reported but does
				// not count against the batch.
				log.Warnf("Job %s created but its run could not be started: %s", key, err)
				continue
			}
			outcome.Started[key] = run.ID
			log.Infof("Started run %s for job %s", run.ID, key)
		}
	}
	return outcome, nil
}
