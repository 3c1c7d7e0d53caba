package user

import "errors"

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when an insert collides with an existing
	// email address.
	ErrEmailTaken = errors.New("email already registered")
)
