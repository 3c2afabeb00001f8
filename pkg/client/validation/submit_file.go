package validation

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mlworkbench/jobctl/pkg/client/domain"
	"github.com/mlworkbench/jobctl/pkg/client/util"
)

// ValidateSubmitFile statically checks a job configuration document: every job
// needs a name and a script, and parent references must point at known keys.
// Conditions that the orchestrator would tolerate at submit time (forward
// references, schedule and parent both set) are logged as warnings.
func ValidateSubmitFile(filePath string) (bool, error) {
	file := &domain.JobsFile{}
	if err := util.BindYaml(filePath, file); err != nil {
		return false, err
	}
	if file.Jobs == nil || file.Jobs.Len() == 0 {
		return false, errors.New("you have provided no jobs to submit")
	}

	position := map[string]int{}
	for i, key := range file.Jobs.Keys() {
		position[key] = i
	}

	for _, key := range file.Jobs.Keys() {
		job, _ := file.Jobs.Get(key)
		if job == nil {
			return false, errors.Errorf("job %s has no definition", key)
		}
		if job.Name == "" {
			return false, errors.Errorf("job %s has no name", key)
		}
		if job.Script == "" {
			return false, errors.Errorf("job %s has no script", key)
		}
		if job.ParentJobKey == "" {
			continue
		}
		if job.ParentJobKey == key {
			return false, errors.Errorf("job %s declares itself as parent", key)
		}
		if !file.Jobs.Contains(job.ParentJobKey) {
			return false, errors.Errorf("job %s references unknown parent job %q", key, job.ParentJobKey)
		}
		if job.Schedule != "" {
			log.Warnf("job %s declares both schedule and parent_job_key; the schedule will win", key)
		}
		if position[job.ParentJobKey] > position[key] {
			log.Warnf("job %s declares parent %s which is defined later; the dependency will not link", key, job.ParentJobKey)
		}
	}
	return true, nil
}
