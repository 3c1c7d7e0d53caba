// Package medicalrecord stores doctor-authored records against a patient.
// Doctors write; patients read their own.
package medicalrecord

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/user"
)

// ErrPatientNotFound is returned when the target patient id does not resolve
// to a patient account.
var ErrPatientNotFound = errors.New("patient not found")

// PatientLookup resolves the target patient. user.Repository satisfies it.
type PatientLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type Service struct {
	repo  Repository
	users PatientLookup
}

func NewService(repo Repository, users PatientLookup) *Service {
	return &Service{repo: repo, users: users}
}

// Create stores a record authored by the doctor.
func (s *Service) Create(ctx context.Context, doctorID uuid.UUID, req *CreateRequest) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}
	if _, err := s.users.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	rec := &Record{
		PatientID:   patientID,
		DoctorID:    doctorID,
		RecordType:  req.RecordType,
		Title:       req.Title,
		Content:     req.Content,
		Attachments: req.Attachments,
	}
	if rec.Attachments == nil {
		rec.Attachments = []string{}
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListForPatient returns the patient's own records.
func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*Record, error) {
	return s.repo.ListForPatient(ctx, patientID)
}
