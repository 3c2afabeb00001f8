package domain

// CreateJobRequest is the payload sent to the workbench job-creation endpoint.
// Field names follow the platform's v2 API.
type CreateJobRequest struct {
	Name              string            `json:"name"`
	Script            string            `json:"script"`
	Kernel            string            `json:"kernel"`
	RuntimeIdentifier string            `json:"runtime_identifier,omitempty"`
	CPU               float64           `json:"cpu"`
	Memory            float64           `json:"memory"`
	NvidiaGPU         int32             `json:"nvidia_gpu,omitempty"`
	Timeout           int64             `json:"timeout"`
	Arguments         string            `json:"arguments,omitempty"`
	Environment       map[string]string `json:"environment,omitempty"`
	Attachments       []string          `json:"attachments,omitempty"`
	Schedule          string            `json:"schedule,omitempty"`
	ParentJobID       string            `json:"parent_job_id,omitempty"`
}

// Job is the platform's representation of a created job.
type Job struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Script   string `json:"script"`
	Schedule string `json:"schedule,omitempty"`
}

// JobRun is a single execution of a job.
type JobRun struct {
	ID     string `json:"id"`
	JobID  string `json:"job_id"`
	Status string `json:"status,omitempty"`
}
