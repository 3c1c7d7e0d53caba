package doctor

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careconnect/careconnect/internal/domain/user"
	"github.com/careconnect/careconnect/internal/platform/auth"
	"github.com/careconnect/careconnect/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group, authenticate echo.MiddlewareFunc) {
	api.GET("/doctors", h.List, authenticate)
	// Registered before /doctors/:id so "availability" is not parsed as an id.
	api.PUT("/doctors/availability", h.SetAvailability, authenticate, auth.RequireRole(auth.RoleDoctor))
	api.GET("/doctors/:id", h.Get, authenticate)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)

	cards, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	resp := map[string]interface{}{
		"doctors": cards,
		"total":   total,
		"limit":   pg.Limit,
		"offset":  pg.Offset,
	}
	if pg.HasNext(total) {
		resp["next_offset"] = pg.NextOffset()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Doctor not found")
	}

	profile, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Doctor not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"doctor": profile})
}

func (h *Handler) SetAvailability(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	var body struct {
		Available *bool `json:"available"`
	}
	if err := c.Bind(&body); err != nil || body.Available == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "available is required")
	}

	u, err := h.svc.SetAvailability(c.Request().Context(), identity.ID, *body.Available)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Doctor not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Availability updated successfully",
		"doctor": map[string]interface{}{
			"id":        u.ID,
			"full_name": u.FullName,
			"available": u.Available,
		},
	})
}
