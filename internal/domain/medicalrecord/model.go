package medicalrecord

import (
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/platform/validation"
)

// Record maps to the medical_records table. Attachments are opaque storage
// references kept in submission order.
type Record struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctor_id"`
	RecordType  string    `db:"record_type" json:"record_type"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Attachments []string  `db:"attachments" json:"attachments"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CreateRequest is the record form submitted by the doctor.
type CreateRequest struct {
	PatientID   string   `json:"patient_id"`
	RecordType  string   `json:"record_type"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Attachments []string `json:"attachments"`
}

func (r *CreateRequest) Validate() error {
	var v validation.Violations
	v.UUID("patient_id", r.PatientID)
	v.OneOf("record_type", r.RecordType, "consultation", "lab_result", "prescription", "diagnosis")
	if v.Required("title", r.Title) {
		v.MaxLen("title", r.Title, 255)
	}
	v.Required("content", r.Content)
	return v.AsError()
}
