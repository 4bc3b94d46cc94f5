package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/core/auth"
)

// Context keys under which decoded claims are stored for downstream handlers.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth extracts the bearer token, decodes it through the codec, and injects
// the resulting claims into the request context. Requests with a missing or
// invalid token are rejected here and never reach role evaluation.
func Auth(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUsername, claims.Subject)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
