package appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careconnect/careconnect/internal/domain/user"
	"github.com/careconnect/careconnect/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group, authenticate echo.MiddlewareFunc) {
	api.POST("/appointments", h.Create, authenticate, auth.RequireRole(auth.RolePatient))
	api.GET("/appointments", h.List, authenticate)
	api.PUT("/appointments/:id", h.UpdateStatus, authenticate)
}

func (h *Handler) Create(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appt, err := h.svc.Book(c.Request().Context(), identity.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Doctor not found")
		case errors.Is(err, ErrSlotTaken):
			return echo.NewHTTPError(http.StatusConflict, "Time slot is already booked")
		}
		return err
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Appointment created successfully",
		"appointment": appt,
	})
}

func (h *Handler) List(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	appts, err := h.svc.ListFor(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	if appts == nil {
		appts = []*Appointment{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"appointments": appts})
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
	}

	var req StatusUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appt, err := h.svc.UpdateStatus(c.Request().Context(), identity, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
		case errors.Is(err, ErrAccessDenied):
			return echo.NewHTTPError(http.StatusForbidden, "Access denied")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Appointment updated successfully",
		"appointment": appt,
	})
}
