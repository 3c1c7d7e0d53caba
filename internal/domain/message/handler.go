package message

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
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
	api.GET("/messages", h.Conversation, authenticate)
	api.POST("/messages", h.Send, authenticate)
}

func (h *Handler) Conversation(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	otherParam := c.QueryParam("otherUserId")
	if otherParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "otherUserId is required")
	}
	otherID, err := uuid.Parse(otherParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "otherUserId must be a valid identifier")
	}

	msgs, err := h.svc.Conversation(c.Request().Context(), identity.ID, otherID)
	if err != nil {
		return err
	}
	if msgs == nil {
		msgs = []*Message{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": msgs})
}

func (h *Handler) Send(c echo.Context) error {
	identity := auth.IdentityFromContext(c.Request().Context())

	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	m, err := h.svc.Send(c.Request().Context(), identity.ID, &req)
	if err != nil {
		if errors.Is(err, ErrReceiverNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Receiver not found")
		}
		return err
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Message sent successfully",
		"data":    m,
	})
}
