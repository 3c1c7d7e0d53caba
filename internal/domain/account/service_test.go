package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/domain/user"
	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/validation"
)

// -- Mock user repository --

type mockUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, _ *user.ProfileUpdate) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ListDoctors(_ context.Context, _, _ int) ([]*user.User, int, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) GetDoctor(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := m.users[id]
	if !ok || u.Role != auth.RoleDoctor {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) (*user.User, error) {
	u, ok := m.users[id]
	if !ok || u.Role != auth.RoleDoctor {
		return nil, user.ErrNotFound
	}
	u.Available = available
	return u, nil
}

func newTestService() (*Service, *mockUserRepo) {
	repo := newMockUserRepo()
	tokens := auth.NewTokenManager("test-secret-test-secret-test-secret", time.Hour)
	return NewService(repo, tokens), repo
}

func validRegister() *RegisterRequest {
	return &RegisterRequest{
		Email:       "alice@x.com",
		Password:    "secret1",
		FullName:    "Alice Smith",
		Phone:       "1234567890",
		Role:        "patient",
		DateOfBirth: "1990-01-15",
		Gender:      "female",
	}
}

// -- Tests --

func TestRegister(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User.Email != "alice@x.com" || resp.User.Role != auth.RolePatient {
		t.Errorf("unexpected summary: %+v", resp.User)
	}

	stored, err := repo.GetByEmail(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "secret1" {
		t.Error("password stored in the clear")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), validRegister())
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *RegisterRequest) { r.Password = "abc" }, "password"},
		{"short name", func(r *RegisterRequest) { r.FullName = "A" }, "full_name"},
		{"bad phone", func(r *RegisterRequest) { r.Phone = "12ab" }, "phone"},
		{"bad role", func(r *RegisterRequest) { r.Role = "admin" }, "role"},
		{"future birth date", func(r *RegisterRequest) { r.DateOfBirth = "2999-01-01" }, "date_of_birth"},
		{"bad gender", func(r *RegisterRequest) { r.Gender = "unspecified" }, "gender"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			var violations validation.Violations
			if !errors.As(err, &violations) {
				t.Fatalf("expected Violations, got %v", err)
			}
			found := false
			for _, v := range violations {
				if v.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no violation for %q in %v", tt.field, violations)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := svc.Login(context.Background(), &LoginRequest{Email: "alice@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.Message != "Login successful" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "alice@x.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestIssuedTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret-test-secret-test-secret", time.Hour)
	svc := NewService(newMockUserRepo(), tokens)

	resp, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	identity, err := tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if identity.ID != resp.User.ID || identity.Role != auth.RolePatient {
		t.Errorf("identity mismatch: %+v vs %+v", identity, resp.User)
	}
}
