package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Validate checks the profile-update form.
func (p *ProfileUpdate) Validate() error {
	var v validation.Violations
	if v.Required("full_name", p.FullName) {
		v.LengthBetween("full_name", p.FullName, 2, 100)
	}
	v.Digits("phone", p.Phone, 10, 15)
	v.DateNotFuture("date_of_birth", p.DateOfBirth)
	v.OneOf("gender", p.Gender, "male", "female", "other")
	return v.AsError()
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, upd *ProfileUpdate) (*User, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateProfile(ctx, id, upd)
}
