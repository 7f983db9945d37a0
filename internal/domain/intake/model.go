package intake

import (
	"strings"
	"time"
)

// IntakeForm maps to the intake_forms table. A task can accumulate several
// rows through resubmission; only the most recently created one is surfaced.
type IntakeForm struct {
	ID          int64      `db:"id" json:"id"`
	TaskID      int64      `db:"task_id" json:"task_id"`
	Status      *string    `db:"status" json:"status,omitempty"`
	SubmittedAt *time.Time `db:"submitted_at" json:"submitted_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// DerivedStatus resolves the display status: the explicit status field when
// present, "completed" when a completion timestamp exists, else "pending".
func (f *IntakeForm) DerivedStatus() string {
	if f.Status != nil && strings.TrimSpace(*f.Status) != "" {
		return *f.Status
	}
	if f.CompletedAt != nil {
		return "completed"
	}
	return "pending"
}
