package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	id := uuid.New()

	tok, err := m.Issue(id, "alice@x.com", RolePatient)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.ID != id {
		t.Errorf("expected id %s, got %s", id, identity.ID)
	}
	if identity.Email != "alice@x.com" {
		t.Errorf("expected email alice@x.com, got %s", identity.Email)
	}
	if identity.Role != RolePatient {
		t.Errorf("expected role patient, got %s", identity.Role)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)
	tok, err := m.Issue(uuid.New(), "bob@x.com", RoleDoctor)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(tok); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	tok, err := issuer.Issue(uuid.New(), "bob@x.com", RoleDoctor)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(tok); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	if _, err := m.Verify("not-a-token"); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("patient"); err != nil || r != RolePatient {
		t.Errorf("expected patient, got %v %v", r, err)
	}
	if r, err := ParseRole("doctor"); err != nil || r != RoleDoctor {
		t.Errorf("expected doctor, got %v %v", r, err)
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Error("expected error for unknown role")
	}
	if _, err := ParseRole(""); err == nil {
		t.Error("expected error for empty role")
	}
}
