package patient

import "context"

// Repository resolves patients from partial contact information.
type Repository interface {
	// FindByContact returns the single most-recently-created patient whose
	// email or phone matches the given identifiers. When both are present
	// the match is a logical OR. Returns (nil, nil) when nothing matches.
	FindByContact(ctx context.Context, email, phone string) (*Patient, error)
}
