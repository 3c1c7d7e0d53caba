package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/user"
	"github.com/careconnect/careconnect/internal/platform/validation"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Party is the joined patient/doctor summary attached to list responses.
type Party struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
}

// Appointment maps to the appointments table. A slot is the
// (doctor, date, time) triple; at most one scheduled appointment may hold it.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Date      user.Date `db:"appointment_date" json:"appointment_date"`
	Time      string    `db:"appointment_time" json:"appointment_time"`
	Reason    string    `db:"reason" json:"reason"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Patient *Party `db:"-" json:"patient,omitempty"`
	Doctor  *Party `db:"-" json:"doctor,omitempty"`
}

// CreateRequest is the booking form.
type CreateRequest struct {
	DoctorID string  `json:"doctor_id"`
	Date     string  `json:"appointment_date"`
	Time     string  `json:"appointment_time"`
	Reason   string  `json:"reason"`
	Notes    *string `json:"notes"`
}

// Validate checks the booking form field constraints.
func (r *CreateRequest) Validate() error {
	var v validation.Violations
	v.UUID("doctor_id", r.DoctorID)
	v.DateNotPast("appointment_date", r.Date)
	v.ClockHHMM("appointment_time", r.Time)
	if v.Required("reason", r.Reason) {
		v.MaxLen("reason", r.Reason, 500)
	}
	if r.Notes != nil {
		v.MaxLen("notes", *r.Notes, 1000)
	}
	return v.AsError()
}

// StatusUpdate is the PUT /appointments/:id body.
type StatusUpdate struct {
	Status string `json:"status"`
}

func (r *StatusUpdate) Validate() error {
	var v validation.Violations
	v.OneOf("status", r.Status, StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled)
	return v.AsError()
}
