package intake

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const intakeCols = `id, task_id, status, submitted_at, completed_at, created_at`

func scanIntakeForm(row pgx.Row) (*IntakeForm, error) {
	var f IntakeForm
	err := row.Scan(&f.ID, &f.TaskID, &f.Status, &f.SubmittedAt, &f.CompletedAt, &f.CreatedAt)
	return &f, err
}

func (r *repoPG) LatestByTask(ctx context.Context, taskIDs []int64) (map[int64]*IntakeForm, error) {
	if len(taskIDs) == 0 {
		return map[int64]*IntakeForm{}, nil
	}

	// The descending sort is what makes LatestPerTask correct.
	rows, err := r.pool.Query(ctx, `SELECT `+intakeCols+` FROM intake_forms
		WHERE task_id = ANY($1) ORDER BY created_at DESC`, taskIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var forms []*IntakeForm
	for rows.Next() {
		f, err := scanIntakeForm(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return LatestPerTask(forms), nil
}
