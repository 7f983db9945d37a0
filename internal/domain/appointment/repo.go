package appointment

import "context"

type Repository interface {
	// LatestByTask returns at most one appointment per task id: the latest
	// by start time. An empty task-id set short-circuits to an empty map
	// without querying.
	LatestByTask(ctx context.Context, taskIDs []int64) (map[int64]*Appointment, error)
}

// LatestPerTask keeps the first appointment observed per task id.
// Precondition: appointments must already be sorted by start_time
// descending — under that order, first seen is latest.
func LatestPerTask(appointments []*Appointment) map[int64]*Appointment {
	result := make(map[int64]*Appointment, len(appointments))
	for _, a := range appointments {
		if _, seen := result[a.TaskID]; !seen {
			result[a.TaskID] = a
		}
	}
	return result
}
