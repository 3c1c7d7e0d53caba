// Package doctor exposes the public doctor directory and the doctor's own
// availability toggle. It reads from the user store; there is no separate
// doctor table.
package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/user"
)

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// List returns available doctors as public cards.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Card, int, error) {
	doctors, total, err := s.users.ListDoctors(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	cards := make([]Card, 0, len(doctors))
	for _, d := range doctors {
		cards = append(cards, cardOf(d))
	}
	return cards, total, nil
}

// Get returns a single doctor's public profile. user.ErrNotFound covers both
// unknown ids and ids that belong to non-doctors.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	d, err := s.users.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}
	p := profileOf(d)
	return &p, nil
}

// SetAvailability flips the doctor's directory visibility.
func (s *Service) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*user.User, error) {
	return s.users.SetAvailability(ctx, id, available)
}
