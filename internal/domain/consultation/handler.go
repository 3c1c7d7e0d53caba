package consultation

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
	api.POST("/consultations", h.Create, authenticate, auth.RequireRole(auth.RoleDoctor))
	api.GET("/consultations", h.List, authenticate)
}

func (h *Handler) Create(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cons, err := h.svc.Create(c.Request().Context(), identity.ID, &req)
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
		}
		return err
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Consultation created successfully",
		"consultation": cons,
	})
}

func (h *Handler) List(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	consults, err := h.svc.ListFor(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	if consults == nil {
		consults = []*Consultation{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"consultations": consults})
}
