package message

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careconnect/careconnect/internal/platform/auth"
)

func requestAs(id uuid.UUID, role auth.Role, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = req.WithContext(auth.WithIdentity(context.Background(), &auth.Identity{ID: id, Role: role}))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerSend(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	body := fmt.Sprintf(`{"receiver_id":%q,"body":"Hello doctor"}`, f.doctor.ID)
	c, rec := requestAs(f.patient.ID, auth.RolePatient, http.MethodPost, "/api/messages", body)
	if err := h.Send(c); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Message sent successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandlerConversationRequiresOtherUser(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	c, _ := requestAs(f.patient.ID, auth.RolePatient, http.MethodGet, "/api/messages", "")
	err := h.Conversation(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if httpErr.Message != "otherUserId is required" {
		t.Errorf("message = %v", httpErr.Message)
	}
}

func TestHandlerConversation(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	if _, err := f.svc.Send(context.Background(), f.patient.ID, &SendRequest{
		ReceiverID: f.doctor.ID.String(), Body: "Hello doctor",
	}); err != nil {
		t.Fatalf("seed message failed: %v", err)
	}

	c, rec := requestAs(f.patient.ID, auth.RolePatient, http.MethodGet,
		"/api/messages?otherUserId="+f.doctor.ID.String(), "")
	if err := h.Conversation(c); err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Hello doctor") {
		t.Errorf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}
