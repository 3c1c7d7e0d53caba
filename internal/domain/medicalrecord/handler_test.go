package medicalrecord

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

	body := fmt.Sprintf(`{"patient_id":%q,"record_type":"diagnosis","title":"Visit summary","content":"Follow up in two weeks."}`, f.patient.ID)
	c, rec := requestAs(f.doctor, auth.RoleDoctor, http.MethodPost, "/api/medical-records", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Medical record created successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandlerCreateUnknownPatient(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	body := fmt.Sprintf(`{"patient_id":%q,"record_type":"diagnosis","title":"Visit summary","content":"x"}`, uuid.New())
	c, _ := requestAs(f.doctor, auth.RoleDoctor, http.MethodPost, "/api/medical-records", body)
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandlerList(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	c, rec := requestAs(f.patient.ID, auth.RolePatient, http.MethodGet, "/api/medical-records", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"medical_records":[]`) {
		t.Errorf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}
