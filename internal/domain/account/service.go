// Package account handles registration, login, and token issuance. Passwords
// are stored as bcrypt hashes on the user row; sessions are stateless JWTs.
package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/careconnect/careconnect/internal/domain/user"
	"github.com/careconnect/careconnect/internal/platform/auth"
)

// ErrInvalidCredentials is returned on a failed login. Unknown email and
// wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users  user.Repository
	tokens *auth.TokenManager
}

func NewService(users user.Repository, tokens *auth.TokenManager) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates the account and issues its first token.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role, err := auth.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	dob, err := user.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		DateOfBirth:  dob,
		Gender:       req.Gender,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    Summary{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role},
	}, nil
}

// Login verifies credentials and issues a fresh token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    Summary{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role},
	}, nil
}
