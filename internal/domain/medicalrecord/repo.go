package medicalrecord

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for medical records.
type Repository interface {
	Create(ctx context.Context, rec *Record) error

	// ListForPatient returns the patient's records newest first.
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Record, error)
}
