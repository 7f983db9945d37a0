package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, first_name, given_name, last_name, family_name,
	email, phone, phone_mobile, address, city, state, country, zip_code,
	dob, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.GivenName, &p.LastName, &p.FamilyName,
		&p.Email, &p.Phone, &p.PhoneMobile, &p.Address, &p.City, &p.State, &p.Country,
		&p.ZipCode, &p.DOB, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) FindByContact(ctx context.Context, email, phone string) (*Patient, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	var (
		where string
		args  []interface{}
	)
	switch {
	case email != "" && phone != "":
		where = `email = $1 OR phone = $2`
		args = []interface{}{email, phone}
	case email != "":
		where = `email = $1`
		args = []interface{}{email}
	case phone != "":
		where = `phone = $1`
		args = []interface{}{phone}
	default:
		return nil, nil
	}

	// Shared identifiers (e.g. a family phone number) can match several
	// records; the most recently created one wins.
	row := r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients
		WHERE `+where+` ORDER BY created_at DESC LIMIT 1`, args...)

	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
