package doctor

import (
	"strings"
	"time"
)

// Doctor maps to the doctors table. Doctors are not versioned; one row per
// id.
type Doctor struct {
	ID            int64     `db:"id" json:"id"`
	FirstName     *string   `db:"first_name" json:"first_name,omitempty"`
	LastName      *string   `db:"last_name" json:"last_name,omitempty"`
	Email         *string   `db:"email" json:"email,omitempty"`
	Specialty     *string   `db:"specialty" json:"specialty,omitempty"`
	LicenseNumber *string   `db:"license_number" json:"license_number,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// FullName joins the non-empty name parts with a space, nil when both are
// missing.
func (d *Doctor) FullName() *string {
	var parts []string
	if d.FirstName != nil && strings.TrimSpace(*d.FirstName) != "" {
		parts = append(parts, *d.FirstName)
	}
	if d.LastName != nil && strings.TrimSpace(*d.LastName) != "" {
		parts = append(parts, *d.LastName)
	}
	if len(parts) == 0 {
		return nil
	}
	full := strings.Join(parts, " ")
	return &full
}
