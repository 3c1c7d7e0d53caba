package consultation

import (
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/platform/validation"
)

// Consultation maps to the consultations table. The patient and doctor ids
// are copied from the appointment at creation time.
type Consultation struct {
	ID            uuid.UUID `db:"id" json:"id"`
	AppointmentID uuid.UUID `db:"appointment_id" json:"appointment_id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID      uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Diagnosis     string    `db:"diagnosis" json:"diagnosis"`
	Treatment     string    `db:"treatment" json:"treatment"`
	Prescription  *string   `db:"prescription" json:"prescription,omitempty"`
	Notes         *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CreateRequest is the consultation form submitted by the doctor.
type CreateRequest struct {
	AppointmentID string  `json:"appointment_id"`
	Diagnosis     string  `json:"diagnosis"`
	Treatment     string  `json:"treatment"`
	Prescription  *string `json:"prescription"`
	Notes         *string `json:"notes"`
}

// Validate checks the consultation form field constraints.
func (r *CreateRequest) Validate() error {
	var v validation.Violations
	v.UUID("appointment_id", r.AppointmentID)
	if v.Required("diagnosis", r.Diagnosis) {
		v.MaxLen("diagnosis", r.Diagnosis, 1000)
	}
	if v.Required("treatment", r.Treatment) {
		v.MaxLen("treatment", r.Treatment, 1000)
	}
	if r.Prescription != nil {
		v.MaxLen("prescription", *r.Prescription, 2000)
	}
	if r.Notes != nil {
		v.MaxLen("notes", *r.Notes, 1000)
	}
	return v.AsError()
}
