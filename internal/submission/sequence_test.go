package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

func jobSet(keys ...string) *domain.JobSet {
	jobs := make([]*domain.JobDefinition, 0, len(keys))
	for _, key := range keys {
		jobs = append(jobs, &domain.JobDefinition{Key: key, Name: key, Script: key + ".py"})
	}
	return domain.NewJobSet(jobs...)
}

func TestSequence_NoBootstrapKeepsDeclaredOrder(t *testing.T) {
	set := jobSet("job_c", "job_a", "job_b")
	assert.Equal(t, []string{"job_c", "job_a", "job_b"}, Sequence(set, DefaultBootstrapKey))
}

func TestSequence_BootstrapFirstRegardlessOfPosition(t *testing.T) {
	tests := map[string][]string{
		"bootstrap declared first":  {"create_env", "job_a", "job_b"},
		"bootstrap declared middle": {"job_a", "create_env", "job_b"},
		"bootstrap declared last":   {"job_a", "job_b", "create_env"},
	}
	for name, declared := range tests {
		t.Run(name, func(t *testing.T) {
			order := Sequence(jobSet(declared...), DefaultBootstrapKey)
			assert.Equal(t, "create_env", order[0])
			assert.Len(t, order, 3)
			assert.ElementsMatch(t, declared, order)
		})
	}
}

func TestSequence_EachKeyExactlyOnce(t *testing.T) {
	set := jobSet("a", "b", "c", "d", "create_env")
	order := Sequence(set, DefaultBootstrapKey)
	seen := map[string]int{}
	for _, key := range order {
		seen[key]++
	}
	assert.Len(t, order, set.Len())
	for _, key := range set.Keys() {
		assert.Equal(t, 1, seen[key], "key %s", key)
	}
}

func TestSequence_CustomBootstrapKey(t *testing.T) {
	set := jobSet("job_a", "setup", "job_b")
	assert.Equal(t, []string{"setup", "job_a", "job_b"}, Sequence(set, "setup"))
}

func TestSequence_NoTransitiveReordering(t *testing.T) {
	// job_a depends on job_b which is declared later; the sequencer must not
	// reorder them, the link is simply dropped at translation time.
	set := domain.NewJobSet(
		&domain.JobDefinition{Key: "job_a", Script: "a.py", ParentJobKey: "job_b"},
		&domain.JobDefinition{Key: "job_b", Script: "b.py"},
	)
	assert.Equal(t, []string{"job_a", "job_b"}, Sequence(set, DefaultBootstrapKey))
}
