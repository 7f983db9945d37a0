package appointment

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const appointmentCols = `id, task_id, status, start_time, end_time, location, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.TaskID, &a.Status, &a.StartTime, &a.EndTime, &a.Location, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) LatestByTask(ctx context.Context, taskIDs []int64) (map[int64]*Appointment, error) {
	if len(taskIDs) == 0 {
		return map[int64]*Appointment{}, nil
	}

	// The descending sort is what makes LatestPerTask correct.
	rows, err := r.pool.Query(ctx, `SELECT `+appointmentCols+` FROM appointments
		WHERE task_id = ANY($1) ORDER BY start_time DESC NULLS LAST`, taskIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return LatestPerTask(items), nil
}
