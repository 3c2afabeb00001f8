package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestJobSet_PreservesDeclaredOrder(t *testing.T) {
	doc := `
jobs:
  job_c:
    name: C
    script: c.py
  job_a:
    name: A
    script: a.py
  job_b:
    name: B
    script: b.py
`
	file := &JobsFile{}
	require.NoError(t, yaml.Unmarshal([]byte(doc), file))

	assert.Equal(t, []string{"job_c", "job_a", "job_b"}, file.Jobs.Keys())
	assert.Equal(t, 3, file.Jobs.Len())

	job, ok := file.Jobs.Get("job_a")
	require.True(t, ok)
	assert.Equal(t, "job_a", job.Key)
	assert.Equal(t, "A", job.Name)
	assert.Equal(t, "a.py", job.Script)
}

func TestJobSet_DuplicateKeyLastValueWins(t *testing.T) {
	doc := `
jobs:
  job_a:
    name: first
    script: a.py
  job_b:
    name: B
    script: b.py
  job_a:
    name: second
    script: a2.py
`
	file := &JobsFile{}
	require.NoError(t, yaml.Unmarshal([]byte(doc), file))

	assert.Equal(t, []string{"job_a", "job_b"}, file.Jobs.Keys())
	job, _ := file.Jobs.Get("job_a")
	assert.Equal(t, "second", job.Name)
	assert.Equal(t, "a2.py", job.Script)
}

func TestJobDefinition_OptionalFieldPresence(t *testing.T) {
	doc := `
jobs:
  explicit_zero:
    name: Z
    script: z.py
    cpu: 0
    timeout: 0
  absent:
    name: A
    script: a.py
`
	file := &JobsFile{}
	require.NoError(t, yaml.Unmarshal([]byte(doc), file))

	explicit, _ := file.Jobs.Get("explicit_zero")
	require.NotNil(t, explicit.CPU)
	assert.Equal(t, float64(0), *explicit.CPU)
	require.NotNil(t, explicit.Timeout)

	absent, _ := file.Jobs.Get("absent")
	assert.Nil(t, absent.CPU)
	assert.Nil(t, absent.Memory)
	assert.Nil(t, absent.Timeout)
	assert.Nil(t, absent.NvidiaGPU)
}

func TestJobDefinition_FullDocument(t *testing.T) {
	doc := `
jobs:
  train:
    name: Train model
    script: ${TEMPLATE_DIR}/scripts/model_training.py
    kernel: python3
    runtime_id: ml-runtime-2023.08
    cpu: 2
    memory: 4
    nvidia_gpu: 1
    timeout: 7200
    arguments: --epochs 10
    environment:
      MODEL_DIR: /home/cdsw/models
    attachments:
      - report/metrics.txt
    parent_job_key: create_env
  nightly:
    name: Nightly report
    script: report.py
    schedule: "0 2 * * *"
`
	file := &JobsFile{}
	require.NoError(t, yaml.Unmarshal([]byte(doc), file))

	train, _ := file.Jobs.Get("train")
	assert.Equal(t, "ml-runtime-2023.08", train.RuntimeID)
	assert.Equal(t, float64(2), *train.CPU)
	assert.Equal(t, float64(4), *train.Memory)
	assert.Equal(t, int32(1), *train.NvidiaGPU)
	assert.Equal(t, int64(7200), *train.Timeout)
	assert.Equal(t, "--epochs 10", train.Arguments)
	assert.Equal(t, map[string]string{"MODEL_DIR": "/home/cdsw/models"}, train.Environment)
	assert.Equal(t, []string{"report/metrics.txt"}, train.Attachments)
	assert.Equal(t, "create_env", train.ParentJobKey)
	assert.Empty(t, train.Schedule)

	nightly, _ := file.Jobs.Get("nightly")
	assert.Equal(t, "0 2 * * *", nightly.Schedule)
	assert.Empty(t, nightly.ParentJobKey)
}

func TestNewJobSet(t *testing.T) {
	set := NewJobSet(
		&JobDefinition{Key: "a", Script: "a.py"},
		&JobDefinition{Key: "b", Script: "b.py"},
	)
	assert.Equal(t, []string{"a", "b"}, set.Keys())
	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("c"))
}
