package document

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const documentCols = `id, task_id, patient_id, doctor_id, type, sub_type, tag, url, file_type, created_at`

func scanDocument(row pgx.Row) (*Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.TaskID, &d.PatientID, &d.DoctorID, &d.Type, &d.SubType,
		&d.Tag, &d.URL, &d.FileType, &d.CreatedAt)
	return &d, err
}

func (r *repoPG) ListForCase(ctx context.Context, taskIDs []int64, patientID int64, doctorIDs []int64) ([]*Document, error) {
	if len(taskIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + documentCols + ` FROM documents
		WHERE patient_id = $1 AND (task_id = ANY($2) OR task_id IS NULL)`
	args := []interface{}{patientID, taskIDs}

	if len(doctorIDs) > 0 {
		query += ` AND doctor_id = ANY($3)`
		args = append(args, doctorIDs)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
