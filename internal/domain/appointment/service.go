// Package appointment implements slot booking. The slot invariant (at most
// one scheduled appointment per doctor/date/time) is enforced twice: an
// advisory read before the insert for a friendly conflict response, and a
// partial unique index at the data layer that decides races.
package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careconnect/careconnect/internal/domain/user"
	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/notification"
)

// UserDirectory is the slice of the user store the booking flow needs.
// user.Repository satisfies it.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// ConfirmationSender dispatches the booking confirmation email.
// notification.Mailer satisfies it.
type ConfirmationSender interface {
	SendAppointmentConfirmation(ctx context.Context, conf notification.AppointmentConfirmation) error
}

type Service struct {
	repo  Repository
	users UserDirectory
	mail  ConfirmationSender
	log   zerolog.Logger
}

func NewService(repo Repository, users UserDirectory, mail ConfirmationSender, log zerolog.Logger) *Service {
	return &Service{repo: repo, users: users, mail: mail, log: log}
}

// Book creates a scheduled appointment for the patient.
//
// A confirmation email is dispatched after the insert; delivery failure is
// logged and never fails the booking.
func (s *Service) Book(ctx context.Context, patientID uuid.UUID, req *CreateRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, user.ErrNotFound
	}
	doctor, err := s.users.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	date, err := user.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.SlotTaken(ctx, doctorID, date, req.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appt := &Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      req.Time,
		Reason:    req.Reason,
		Notes:     req.Notes,
		Status:    StatusScheduled,
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, appt, doctor)
	return appt, nil
}

func (s *Service) sendConfirmation(ctx context.Context, appt *Appointment, doctor *user.User) {
	patient, err := s.users.GetByID(ctx, appt.PatientID)
	if err != nil {
		s.log.Warn().Err(err).Stringer("appointment_id", appt.ID).Msg("skip confirmation email: patient lookup failed")
		return
	}

	conf := notification.AppointmentConfirmation{
		Recipient:   patient.Email,
		PatientName: patient.FullName,
		DoctorName:  doctor.FullName,
		Date:        appt.Date.String(),
		Time:        appt.Time,
		Reason:      appt.Reason,
	}
	if err := s.mail.SendAppointmentConfirmation(ctx, conf); err != nil {
		s.log.Warn().Err(err).Stringer("appointment_id", appt.ID).Msg("confirmation email failed")
	}
}

// ListFor returns the identity-scoped appointment list: patients see their
// own bookings, doctors the ones assigned to them.
func (s *Service) ListFor(ctx context.Context, identity *auth.Identity) ([]*Appointment, error) {
	switch identity.Role {
	case auth.RolePatient:
		return s.repo.ListForPatient(ctx, identity.ID)
	case auth.RoleDoctor:
		return s.repo.ListForDoctor(ctx, identity.ID)
	default:
		return nil, errors.New("unknown role")
	}
}

// UpdateStatus transitions an appointment. Only the patient or the assigned
// doctor may do so.
func (s *Service) UpdateStatus(ctx context.Context, identity *auth.Identity, id uuid.UUID, req *StatusUpdate) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt.PatientID != identity.ID && appt.DoctorID != identity.ID {
		return nil, ErrAccessDenied
	}

	return s.repo.UpdateStatus(ctx, id, req.Status)
}
