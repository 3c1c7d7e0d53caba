package consultation

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for consultations.
type Repository interface {
	Create(ctx context.Context, c *Consultation) error

	// ListForPatient and ListForDoctor return consultations newest first.
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Consultation, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Consultation, error)
}
