// Package consultation records the outcome of an appointment. Creating a
// consultation completes the linked appointment; the two writes are not
// atomic, so a crash in between can leave a consultation whose appointment is
// still scheduled. Completion is retried on the next submission rather than
// rolled back.
package consultation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careconnect/careconnect/internal/domain/appointment"
	"github.com/careconnect/careconnect/internal/platform/auth"
)

// ErrAppointmentNotFound covers both unknown appointment ids and appointments
// assigned to a different doctor. The caller cannot distinguish the two.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentStore is the slice of the appointment store the consultation
// flow needs. appointment.Repository satisfies it.
type AppointmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*appointment.Appointment, error)
}

type Service struct {
	repo         Repository
	appointments AppointmentStore
	log          zerolog.Logger
}

func NewService(repo Repository, appointments AppointmentStore, log zerolog.Logger) *Service {
	return &Service{repo: repo, appointments: appointments, log: log}
}

// Create records a consultation for an appointment owned by the doctor, then
// marks the appointment completed.
func (s *Service) Create(ctx context.Context, doctorID uuid.UUID, req *CreateRequest) (*Consultation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	apptID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	appt, err := s.appointments.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appt.DoctorID != doctorID {
		return nil, ErrAppointmentNotFound
	}

	cons := &Consultation{
		AppointmentID: apptID,
		PatientID:     appt.PatientID,
		DoctorID:      doctorID,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, cons); err != nil {
		return nil, err
	}

	if _, err := s.appointments.UpdateStatus(ctx, apptID, appointment.StatusCompleted); err != nil {
		s.log.Error().Err(err).
			Stringer("appointment_id", apptID).
			Stringer("consultation_id", cons.ID).
			Msg("consultation recorded but appointment not completed")
	}
	return cons, nil
}

// ListFor returns the identity-scoped consultation list.
func (s *Service) ListFor(ctx context.Context, identity *auth.Identity) ([]*Consultation, error) {
	switch identity.Role {
	case auth.RolePatient:
		return s.repo.ListForPatient(ctx, identity.ID)
	case auth.RoleDoctor:
		return s.repo.ListForDoctor(ctx, identity.ID)
	default:
		return nil, errors.New("unknown role")
	}
}
