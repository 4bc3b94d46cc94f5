package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Credential and token failures collapse to generic messages regardless of
// sub-cause; only duplicate-identity errors carry detail, since a legitimate
// admin needs it to correct the input.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "incorrect username or password"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many failed login attempts"
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound, "admin not found"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "client not found"
	case errors.Is(err, domain.ErrInvalidClientStatus):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
