package account

import (
	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/validation"
)

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
}

// Validate checks the registration form field constraints.
func (r *RegisterRequest) Validate() error {
	var v validation.Violations
	v.Email("email", r.Email)
	if v.Required("password", r.Password) {
		v.MinLen("password", r.Password, 6)
	}
	if v.Required("full_name", r.FullName) {
		v.LengthBetween("full_name", r.FullName, 2, 100)
	}
	v.Digits("phone", r.Phone, 10, 15)
	v.OneOf("role", r.Role, "patient", "doctor")
	v.DateNotFuture("date_of_birth", r.DateOfBirth)
	v.OneOf("gender", r.Gender, "male", "female", "other")
	return v.AsError()
}

// LoginRequest is the login form. Only presence is checked; credentials are
// verified against the stored hash.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var v validation.Violations
	v.Required("email", r.Email)
	v.Required("password", r.Password)
	return v.AsError()
}

// Summary is the trimmed account representation returned with a token.
type Summary struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     auth.Role `json:"role"`
}

// AuthResponse is the register/login response envelope.
type AuthResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    Summary `json:"user"`
}
