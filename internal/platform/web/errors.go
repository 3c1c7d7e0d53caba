// Package web maps pipeline errors to the JSON error envelope used by every
// endpoint: {error, message?, details?}.
package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careconnect/careconnect/internal/platform/validation"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message,omitempty"`
	Details []validation.Violation `json:"details,omitempty"`
}

// ErrorHandler returns the central echo error handler. Known failure
// branches keep their status and message; anything unexpected becomes a
// generic 500 with the cause logged but never leaked.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var body ErrorBody
		status := http.StatusInternalServerError

		var violations validation.Violations
		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &violations):
			status = http.StatusBadRequest
			body = ErrorBody{Error: "Validation failed", Details: violations}

		case errors.Is(err, echo.ErrNotFound), errors.Is(err, echo.ErrMethodNotAllowed):
			// Router-level miss: no registered handler for this method+path.
			status = http.StatusNotFound
			body = ErrorBody{
				Error:   "Endpoint not found",
				Message: fmt.Sprintf("Cannot %s %s", c.Request().Method, c.Request().URL.Path),
			}

		case errors.As(err, &httpErr):
			status = httpErr.Code
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = http.StatusText(status)
			}
			if status >= http.StatusInternalServerError {
				logger.Error().Err(err).
					Str("path", c.Request().URL.Path).
					Msg("request failed")
				msg = "Internal server error"
			}
			body = ErrorBody{Error: msg}

		default:
			logger.Error().Err(err).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
			body = ErrorBody{Error: "Internal server error"}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
