package user

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

// RegisterRoutes attaches the authentication gate per route rather than on a
// sub-group, so unmatched /api paths still reach the shared 404 fallback.
func (h *Handler) RegisterRoutes(api *echo.Group, authenticate echo.MiddlewareFunc) {
	api.GET("/users/profile", h.GetProfile, authenticate)
	api.PUT("/users/profile", h.UpdateProfile, authenticate)
}

func (h *Handler) GetProfile(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	u, err := h.svc.GetProfile(c.Request().Context(), identity.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"user": u})
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	var upd ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Request().Context(), identity.ID, &upd)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    u,
	})
}
