package task

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const taskCols = `id, patient_id, doctor_id, status, type, tag, completed_at,
	provider_decline_reason, admin_decline_reason, details, created_at`

func scanTask(row pgx.Row) (*Task, error) {
	var t Task
	err := row.Scan(&t.ID, &t.PatientID, &t.DoctorID, &t.Status, &t.Type, &t.Tag,
		&t.CompletedAt, &t.ProviderDeclineReason, &t.AdminDeclineReason, &t.Details, &t.CreatedAt)
	return &t, err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64, limit int) ([]*Task, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+taskCols+` FROM tasks
		WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
