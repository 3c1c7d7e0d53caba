package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerRegister(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	c, rec := postJSON("/api/auth/register",
		`{"email":"alice@x.com","password":"secret1","full_name":"Alice Smith","phone":"1234567890","role":"patient","date_of_birth":"1990-01-15","gender":"female"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token"`) {
		t.Errorf("no token in response: %s", rec.Body.String())
	}
}

func TestHandlerRegisterConflict(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}

	c, _ := postJSON("/api/auth/register",
		`{"email":"alice@x.com","password":"secret1","full_name":"Alice Smith","phone":"1234567890","role":"patient","date_of_birth":"1990-01-15","gender":"female"}`)
	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
	if httpErr.Message != "User already exists" {
		t.Errorf("message = %v", httpErr.Message)
	}
}

func TestHandlerLoginBadCredentials(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	c, _ := postJSON("/api/auth/login", `{"email":"nobody@x.com","password":"wrong"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestHandlerLogout(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	c, rec := postJSON("/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Logout successful") {
		t.Errorf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}
