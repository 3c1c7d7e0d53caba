package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/user"
)

// Repository is the persistence boundary for appointments.
//
// Create must enforce the slot invariant at the data layer and return
// ErrSlotTaken when a scheduled appointment already holds the slot, so two
// concurrent bookings that both pass SlotTaken still cannot double-book.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)

	// SlotTaken is the advisory pre-check used for a friendly 409 before
	// attempting the insert.
	SlotTaken(ctx context.Context, doctorID uuid.UUID, date user.Date, timeOfDay string) (bool, error)

	// ListForPatient and ListForDoctor return appointments ordered by
	// appointment date ascending, with joined party summaries.
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Appointment, error)
}
