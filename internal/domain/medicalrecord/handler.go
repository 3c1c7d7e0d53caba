package medicalrecord

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careconnect/careconnect/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group, authenticate echo.MiddlewareFunc) {
	api.POST("/medical-records", h.Create, authenticate, auth.RequireRole(auth.RoleDoctor))
	api.GET("/medical-records", h.List, authenticate, auth.RequireRole(auth.RolePatient))
}

func (h *Handler) Create(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rec, err := h.svc.Create(c.Request().Context(), identity.ID, &req)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
		}
		return err
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":        "Medical record created successfully",
		"medical_record": rec,
	})
}

func (h *Handler) List(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	records, err := h.svc.ListForPatient(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	if records == nil {
		records = []*Record{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"medical_records": records})
}
