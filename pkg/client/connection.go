package client

import (
	"fmt"
	"strings"
	"time"
)

// ApiConnectionDetails holds everything needed to reach the workbench API.
// WorkbenchUrl, ApiKey and ProjectId are mandatory and validated before any
// submission is attempted.
type ApiConnectionDetails struct {
	WorkbenchUrl   string
	ApiKey         string
	ProjectId      string
	RequestTimeout time.Duration
}

// SubmitDefaults are the batch-wide fallback values applied by the request
// translator when a job definition omits a field.
type SubmitDefaults struct {
	RuntimeId      string
	DefaultCpu     float64
	DefaultMemory  float64
	DefaultTimeout int64
	TemplateDir    string
}

const DefaultRequestTimeout = 10 * time.Second

// MissingCredentialError enumerates mandatory connection values that were not
// supplied by flags, environment or config file.
type MissingCredentialError struct {
	Missing []string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing mandatory configuration: %s", strings.Join(e.Missing, ", "))
}

// Validate fails fast when mandatory connection values are absent, naming
// exactly which ones.
func (d *ApiConnectionDetails) Validate() error {
	var missing []string
	if d.WorkbenchUrl == "" {
		missing = append(missing, "workbenchUrl")
	}
	if d.ApiKey == "" {
		missing = append(missing, "apiKey")
	}
	if d.ProjectId == "" {
		missing = append(missing, "projectId")
	}
	if len(missing) > 0 {
		return &MissingCredentialError{Missing: missing}
	}
	return nil
}
