package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for user accounts. Handlers and
// services only see this interface; tests substitute a map-backed double.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd *ProfileUpdate) (*User, error)

	// ListDoctors returns users with role = doctor and available = true.
	ListDoctors(ctx context.Context, limit, offset int) ([]*User, int, error)

	// GetDoctor returns the user only when it exists with role = doctor.
	GetDoctor(ctx context.Context, id uuid.UUID) (*User, error)

	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*User, error)
}
