package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/internal/platform/validation"
)

// -- Mock Repository --

type mockRepo struct {
	users map[uuid.UUID]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[uuid.UUID]*User)}
}

func (m *mockRepo) Create(_ context.Context, u *User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) UpdateProfile(_ context.Context, id uuid.UUID, upd *ProfileUpdate) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	dob, err := ParseDate(upd.DateOfBirth)
	if err != nil {
		return nil, err
	}
	u.FullName = upd.FullName
	u.Phone = upd.Phone
	u.DateOfBirth = dob
	u.Gender = upd.Gender
	u.Address = upd.Address
	u.UpdatedAt = time.Now()
	return u, nil
}

func (m *mockRepo) ListDoctors(_ context.Context, limit, offset int) ([]*User, int, error) {
	var doctors []*User
	for _, u := range m.users {
		if u.Role == auth.RoleDoctor && u.Available {
			doctors = append(doctors, u)
		}
	}
	return doctors, len(doctors), nil
}

func (m *mockRepo) GetDoctor(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok || u.Role != auth.RoleDoctor {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *mockRepo) SetAvailability(_ context.Context, id uuid.UUID, available bool) (*User, error) {
	u, ok := m.users[id]
	if !ok || u.Role != auth.RoleDoctor {
		return nil, ErrNotFound
	}
	u.Available = available
	return u, nil
}

func seedUser(repo *mockRepo, email string, role auth.Role) *User {
	u := &User{
		Email:       email,
		FullName:    "Test User",
		Phone:       "1234567890",
		Role:        role,
		DateOfBirth: NewDate(1990, time.January, 15),
		Gender:      "other",
	}
	_ = repo.Create(context.Background(), u)
	return u
}

// -- Tests --

func TestGetProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	u := seedUser(repo, "alice@x.com", auth.RolePatient)

	got, err := svc.GetProfile(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Email != "alice@x.com" {
		t.Errorf("Email = %q", got.Email)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	u := seedUser(repo, "alice@x.com", auth.RolePatient)

	addr := "12 Main Street"
	got, err := svc.UpdateProfile(context.Background(), u.ID, &ProfileUpdate{
		FullName:    "Alice Smith",
		Phone:       "0987654321",
		DateOfBirth: "1991-02-20",
		Gender:      "female",
		Address:     &addr,
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if got.FullName != "Alice Smith" {
		t.Errorf("FullName = %q", got.FullName)
	}
	if got.Address == nil || *got.Address != addr {
		t.Errorf("Address = %v", got.Address)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	u := seedUser(repo, "alice@x.com", auth.RolePatient)

	_, err := svc.UpdateProfile(context.Background(), u.ID, &ProfileUpdate{
		FullName:    "A",
		Phone:       "123",
		DateOfBirth: "2999-01-01",
		Gender:      "unknown",
	})
	var violations validation.Violations
	if !errors.As(err, &violations) {
		t.Fatalf("expected Violations, got %v", err)
	}
	if len(violations) < 4 {
		t.Errorf("expected violations for all four fields, got %d: %v", len(violations), violations)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("1990-01-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(b) != `"1990-01-15"` {
		t.Errorf("MarshalJSON = %s", b)
	}

	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip mismatch: %v != %v", back, d)
	}
}
