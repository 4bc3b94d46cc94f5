package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/api/middleware"
	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: a present role proves the
// middleware ran on this route.
func ctxClaims(c echo.Context) (username string, role domain.Role, err error) {
	role, ok := c.Get(middleware.CtxRole).(domain.Role)
	if !ok {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get(middleware.CtxUsername).(string)
	return username, role, nil
}
