package consultation

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

func requestAs(id uuid.UUID, role auth.Role, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req = req.WithContext(auth.WithIdentity(context.Background(), &auth.Identity{ID: id, Role: role}))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerCreate(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)
	appt := f.appts.add(f.patient, f.doctor)

	body := fmt.Sprintf(`{"appointment_id":%q,"diagnosis":"Seasonal allergies","treatment":"Antihistamines"}`, appt.ID)
	c, rec := requestAs(f.doctor, auth.RoleDoctor, http.MethodPost, "/api/consultations", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Consultation created successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandlerCreateForeignAppointment(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)
	appt := f.appts.add(f.patient, uuid.New())

	body := fmt.Sprintf(`{"appointment_id":%q,"diagnosis":"Seasonal allergies","treatment":"Antihistamines"}`, appt.ID)
	c, _ := requestAs(f.doctor, auth.RoleDoctor, http.MethodPost, "/api/consultations", body)
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
	if httpErr.Message != "Appointment not found" {
		t.Errorf("message = %v", httpErr.Message)
	}
}

func TestHandlerList(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	c, rec := requestAs(f.patient, auth.RolePatient, http.MethodGet, "/api/consultations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"consultations":[]`) {
		t.Errorf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}
