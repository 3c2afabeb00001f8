package submission

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mlworkbench/jobctl/pkg/client"
	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

const (
	// TemplateDirToken marks path fields that should be rewritten against the
	// currently configured template directory, so a template tree can be
	// relocated without editing every job's script path.
	TemplateDirToken = "${TEMPLATE_DIR}"

	// TemplateDirVariable is injected into every job's environment, naming the
	// active template directory.
	TemplateDirVariable = "TEMPLATE_DIR"

	fallbackCpu     = 1
	fallbackMemory  = 1
	fallbackTimeout = 3600
	fallbackKernel  = "python3"
)

// SubmissionResult maps job keys to the identifiers the platform assigned on
// successful creation. Entries exist only for successful submissions; a job
// whose parent has no entry is submitted as independent.
type SubmissionResult map[string]string

// Translator maps a job definition to a creation request. Resolution order per
// field: explicit value on the definition, then batch-wide default, then
// hardcoded fallback.
type Translator struct {
	Defaults *client.SubmitDefaults
}

func NewTranslator(defaults *client.SubmitDefaults) *Translator {
	return &Translator{Defaults: defaults}
}

func (t *Translator) Translate(job *domain.JobDefinition, submitted SubmissionResult) *domain.CreateJobRequest {
	req := &domain.CreateJobRequest{
		Name:        job.Name,
		Script:      t.rewritePath(job.Script),
		Kernel:      job.Kernel,
		CPU:         t.Defaults.DefaultCpu,
		Memory:      t.Defaults.DefaultMemory,
		Timeout:     t.Defaults.DefaultTimeout,
		Arguments:   job.Arguments,
		Environment: t.mergeEnvironment(job.Environment),
	}
	if req.Kernel == "" {
		req.Kernel = fallbackKernel
	}
	if req.CPU == 0 {
		req.CPU = fallbackCpu
	}
	if req.Memory == 0 {
		req.Memory = fallbackMemory
	}
	if req.Timeout == 0 {
		req.Timeout = fallbackTimeout
	}
	if job.CPU != nil {
		req.CPU = *job.CPU
	}
	if job.Memory != nil {
		req.Memory = *job.Memory
	}
	if job.Timeout != nil {
		req.Timeout = *job.Timeout
	}
	if job.NvidiaGPU != nil {
		req.NvidiaGPU = *job.NvidiaGPU
	}

	req.RuntimeIdentifier = job.RuntimeID
	if req.RuntimeIdentifier == "" {
		req.RuntimeIdentifier = t.Defaults.RuntimeId
	}
	if req.RuntimeIdentifier == "" {
		log.Warnf("job %s: no runtime identifier declared and no default configured, submitting without one", job.Key)
	}

	for _, attachment := range job.Attachments {
		req.Attachments = append(req.Attachments, t.rewritePath(attachment))
	}

	// Schedule and parent are mutually exclusive on the platform; when both
	// are declared the schedule wins.
	switch {
	case job.Schedule != "":
		if job.ParentJobKey != "" {
			log.Warnf("job %s declares both schedule and parent_job_key; using the schedule", job.Key)
		}
		req.Schedule = job.Schedule
	case job.ParentJobKey != "":
		if parentId, ok := submitted[job.ParentJobKey]; ok {
			req.ParentJobID = parentId
		} else {
			log.Warnf("job %s: parent job %q not found, job will not be dependent", job.Key, job.ParentJobKey)
		}
	}

	return req
}

func (t *Translator) rewritePath(path string) string {
	if strings.HasPrefix(path, TemplateDirToken) {
		return t.Defaults.TemplateDir + strings.TrimPrefix(path, TemplateDirToken)
	}
	return path
}

// mergeEnvironment unions the job's declared variables with the injected
// template-directory entry. A declared variable with the same name wins.
func (t *Translator) mergeEnvironment(declared map[string]string) map[string]string {
	merged := make(map[string]string, len(declared)+1)
	for name, value := range declared {
		merged[name] = value
	}
	if _, ok := merged[TemplateDirVariable]; !ok {
		merged[TemplateDirVariable] = t.Defaults.TemplateDir
	}
	return merged
}
