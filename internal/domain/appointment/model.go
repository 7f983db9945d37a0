package appointment

import "time"

// Appointment maps to the appointments table. A task can have several
// scheduled slots; only the latest by start time is surfaced.
type Appointment struct {
	ID        int64      `db:"id" json:"id"`
	TaskID    int64      `db:"task_id" json:"task_id"`
	Status    *string    `db:"status" json:"status,omitempty"`
	StartTime *time.Time `db:"start_time" json:"start_time,omitempty"`
	EndTime   *time.Time `db:"end_time" json:"end_time,omitempty"`
	Location  *string    `db:"location" json:"location,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
