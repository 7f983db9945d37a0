package task

import (
	"strconv"
	"strings"
	"time"
)

// Task maps to the tasks table. A task belongs to exactly one patient and
// optionally references one doctor. doctor_id is a text column in the legacy
// schema; values that do not parse as numbers are treated as unassigned.
type Task struct {
	ID                    int64                  `db:"id" json:"id"`
	PatientID             int64                  `db:"patient_id" json:"patient_id"`
	DoctorID              *string                `db:"doctor_id" json:"doctor_id,omitempty"`
	Status                *string                `db:"status" json:"status,omitempty"`
	Type                  *string                `db:"type" json:"type,omitempty"`
	Tag                   *string                `db:"tag" json:"tag,omitempty"`
	CompletedAt           *time.Time             `db:"completed_at" json:"completed_at,omitempty"`
	ProviderDeclineReason *string                `db:"provider_decline_reason" json:"provider_decline_reason,omitempty"`
	AdminDeclineReason    *string                `db:"admin_decline_reason" json:"admin_decline_reason,omitempty"`
	Details               map[string]interface{} `db:"details" json:"details,omitempty"`
	CreatedAt             time.Time              `db:"created_at" json:"created_at"`
}

// ParsedDoctorID returns the referenced doctor id when doctor_id holds a
// valid number.
func (t *Task) ParsedDoctorID() (int64, bool) {
	if t.DoctorID == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(*t.DoctorID), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Completed reports whether the task finished: either the completion
// timestamp is set or the status text reads "completed" in any casing.
func (t *Task) Completed() bool {
	if t.CompletedAt != nil {
		return true
	}
	return t.Status != nil && strings.EqualFold(strings.TrimSpace(*t.Status), "completed")
}

// DeclineReason resolves the combined decline reason, provider first, then
// admin, nil when neither is set.
func (t *Task) DeclineReason() *string {
	if t.ProviderDeclineReason != nil && strings.TrimSpace(*t.ProviderDeclineReason) != "" {
		return t.ProviderDeclineReason
	}
	if t.AdminDeclineReason != nil && strings.TrimSpace(*t.AdminDeclineReason) != "" {
		return t.AdminDeclineReason
	}
	return nil
}
