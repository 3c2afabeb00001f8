package domain

import (
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// JobDefinition is one named entry of the job configuration document. Optional
// numeric fields are pointers so that "absent" can be told apart from zero when
// batch defaults are applied.
type JobDefinition struct {
	// Key is the mapping key the definition was declared under. It is set by
	// JobSet during unmarshalling and is not itself part of the document.
	Key string `yaml:"-" json:"key"`

	Name         string            `yaml:"name" json:"name"`
	Script       string            `yaml:"script" json:"script"`
	Kernel       string            `yaml:"kernel,omitempty" json:"kernel,omitempty"`
	RuntimeID    string            `yaml:"runtime_id,omitempty" json:"runtime_id,omitempty"`
	CPU          *float64          `yaml:"cpu,omitempty" json:"cpu,omitempty"`
	Memory       *float64          `yaml:"memory,omitempty" json:"memory,omitempty"`
	NvidiaGPU    *int32            `yaml:"nvidia_gpu,omitempty" json:"nvidia_gpu,omitempty"`
	Timeout      *int64            `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Arguments    string            `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	Environment  map[string]string `yaml:"environment,omitempty" json:"environment,omitempty"`
	Attachments  []string          `yaml:"attachments,omitempty" json:"attachments,omitempty"`
	Schedule     string            `yaml:"schedule,omitempty" json:"schedule,omitempty"`
	ParentJobKey string            `yaml:"parent_job_key,omitempty" json:"parent_job_key,omitempty"`
}

// JobSet holds the job definitions of one configuration load, preserving the
// order they were declared in. Duplicate keys keep their first position and
// take the last declared value, matching plain mapping semantics.
type JobSet struct {
	keys  []string
	byKey map[string]*JobDefinition
}

// JobsFile is the top-level shape of a job configuration document.
type JobsFile struct {
	Jobs *JobSet `yaml:"jobs"`
}

func (s *JobSet) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var ordered yaml.MapSlice
	if err := unmarshal(&ordered); err != nil {
		return err
	}
	byKey := map[string]*JobDefinition{}
	if err := unmarshal(&byKey); err != nil {
		return err
	}

	s.byKey = byKey
	s.keys = nil
	seen := map[string]bool{}
	for _, item := range ordered {
		key, ok := item.Key.(string)
		if !ok {
			return errors.Errorf("job key %v is not a string", item.Key)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		s.keys = append(s.keys, key)
	}
	for _, key := range s.keys {
		if s.byKey[key] != nil {
			s.byKey[key].Key = key
		}
	}
	return nil
}

// Keys returns the job keys in declared order.
func (s *JobSet) Keys() []string {
	return s.keys
}

func (s *JobSet) Get(key string) (*JobDefinition, bool) {
	job, ok := s.byKey[key]
	return job, ok
}

func (s *JobSet) Contains(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

func (s *JobSet) Len() int {
	return len(s.keys)
}

// NewJobSet builds a JobSet from an ordered list of definitions, mainly for
// tests. Definitions must have their Key field populated.
func NewJobSet(jobs ...*JobDefinition) *JobSet {
	s := &JobSet{byKey: map[string]*JobDefinition{}}
	for _, job := range jobs {
		if !s.Contains(job.Key) {
			s.keys = append(s.keys, job.Key)
		}
		s.byKey[job.Key] = job
	}
	return s
}
