package submission

import (
	"github.com/mlworkbench/jobctl/pkg/client/domain"
)

// DefaultBootstrapKey is the conventional key of the environment-bootstrap job.
const DefaultBootstrapKey = "create_env"

// Sequence produces the linear submission order: the bootstrap job (if
// present) first, then all remaining jobs in declared order.
//
// This is a single-level dependency model, not a DAG scheduler. A job may name
// one parent, but no transitive reordering happens beyond "bootstrap first": a
// job whose parent appears later in declared order is submitted without the
// parent link rather than reordered.
func Sequence(jobs *domain.JobSet, bootstrapKey string) []string {
	keys := jobs.Keys()
	order := make([]string, 0, len(keys))
	if bootstrapKey != "" && jobs.Contains(bootstrapKey) {
		order = append(order, bootstrapKey)
	}
	for _, key := range keys {
		if key == bootstrapKey {
			continue
		}
		order = append(order, key)
	}
	return order
}
