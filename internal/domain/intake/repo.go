package intake

import "context"

type Repository interface {
	// LatestByTask returns at most one intake form per task id: the most
	// recently created row. An empty task-id set short-circuits to an empty
	// map without querying.
	LatestByTask(ctx context.Context, taskIDs []int64) (map[int64]*IntakeForm, error)
}

// LatestPerTask keeps the first form observed per task id. Precondition:
// forms must already be sorted by created_at descending — under that order,
// first seen is most recent. Callers fetching from the store must guarantee
// the sort before deduplicating.
func LatestPerTask(forms []*IntakeForm) map[int64]*IntakeForm {
	result := make(map[int64]*IntakeForm, len(forms))
	for _, f := range forms {
		if _, seen := result[f.TaskID]; !seen {
			result[f.TaskID] = f
		}
	}
	return result
}
