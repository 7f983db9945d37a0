package document

import "context"

type Repository interface {
	// ListForCase returns the documents whose task id falls in the task set
	// and whose patient id matches, plus the patient's documents with no
	// task id (assigned downstream). When doctorIDs is non-empty the result
	// is further restricted to those doctor ids. The patient-id match is a
	// hard filter against cross-patient leakage.
	ListForCase(ctx context.Context, taskIDs []int64, patientID int64, doctorIDs []int64) ([]*Document, error)
}
