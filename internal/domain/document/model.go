package document

import "time"

// Document maps to the documents table. Every document belongs to one
// patient and (normally) one task; task_id is nullable in the legacy schema.
type Document struct {
	ID        int64     `db:"id" json:"id"`
	TaskID    *int64    `db:"task_id" json:"task_id,omitempty"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  *int64    `db:"doctor_id" json:"doctor_id,omitempty"`
	Type      *string   `db:"type" json:"type,omitempty"`
	SubType   *string   `db:"sub_type" json:"sub_type,omitempty"`
	Tag       *string   `db:"tag" json:"tag,omitempty"`
	URL       *string   `db:"url" json:"url,omitempty"`
	FileType  *string   `db:"file_type" json:"file_type,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
