package task

import "context"

type Repository interface {
	// ListByPatient returns the patient's tasks ordered by creation time
	// descending, truncated to limit. An empty result is not an error.
	ListByPatient(ctx context.Context, patientID int64, limit int) ([]*Task, error)
}
