package submission

import (
	"fmt"
	"strings"
)

// ConfigNotFoundError is returned when no candidate location held a job
// configuration document.
type ConfigNotFoundError struct {
	Attempted []string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("could not find a job configuration in any of these locations: %s", strings.Join(e.Attempted, ", "))
}

// ConfigParseError is returned when a configuration document exists but could
// not be used: invalid syntax or no top-level jobs collection.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("invalid job configuration %s: %s", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// BootstrapFailureError aborts the run: the bootstrap job failed to submit and
// nothing downstream can meaningfully run without the environment it creates.
type BootstrapFailureError struct {
	Key string
	Err error
}

func (e *BootstrapFailureError) Error() string {
	return fmt.Sprintf("bootstrap job %s failed to submit, aborting run: %s", e.Key, e.Err)
}

func (e *BootstrapFailureError) Unwrap() error {
	return e.Err
}
