package patient

import (
	"strings"
	"time"
)

// Patient maps to the patients table. The table carries both current and
// historically-named columns for the same facts (given_name/family_name and
// phone_mobile predate the current schema); readers resolve through whichever
// is populated.
type Patient struct {
	ID          int64      `db:"id" json:"id"`
	FirstName   *string    `db:"first_name" json:"first_name,omitempty"`
	GivenName   *string    `db:"given_name" json:"given_name,omitempty"`
	LastName    *string    `db:"last_name" json:"last_name,omitempty"`
	FamilyName  *string    `db:"family_name" json:"family_name,omitempty"`
	Email       *string    `db:"email" json:"email,omitempty"`
	Phone       *string    `db:"phone" json:"phone,omitempty"`
	PhoneMobile *string    `db:"phone_mobile" json:"phone_mobile,omitempty"`
	Address     *string    `db:"address" json:"address,omitempty"`
	City        *string    `db:"city" json:"city,omitempty"`
	State       *string    `db:"state" json:"state,omitempty"`
	Country     *string    `db:"country" json:"country,omitempty"`
	ZipCode     *string    `db:"zip_code" json:"zip_code,omitempty"`
	DOB         *string    `db:"dob" json:"dob,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// PreferredFirstName resolves the first name across schema generations.
func (p *Patient) PreferredFirstName() *string {
	return coalesce(p.FirstName, p.GivenName)
}

// PreferredLastName resolves the last name across schema generations.
func (p *Patient) PreferredLastName() *string {
	return coalesce(p.LastName, p.FamilyName)
}

// PreferredPhone resolves the phone number across schema generations.
func (p *Patient) PreferredPhone() *string {
	return coalesce(p.Phone, p.PhoneMobile)
}

// FullName joins the non-empty name parts with a space, nil when both are
// missing.
func (p *Patient) FullName() *string {
	var parts []string
	if f := p.PreferredFirstName(); f != nil {
		parts = append(parts, *f)
	}
	if l := p.PreferredLastName(); l != nil {
		parts = append(parts, *l)
	}
	if len(parts) == 0 {
		return nil
	}
	full := strings.Join(parts, " ")
	return &full
}

func coalesce(values ...*string) *string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return v
		}
	}
	return nil
}
