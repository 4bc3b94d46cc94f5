package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/core/auth"
	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// RBAC gates a route on the roles injected by Auth. It must run after Auth;
// a request arriving without decoded claims is treated as forbidden. With an
// empty role list any authenticated principal passes.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	required := auth.Roles(allowedRoles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok {
				return domain.ErrForbidden
			}
			username, _ := c.Get(CtxUsername).(string)

			if err := auth.Check(auth.Claims{Subject: username, Role: role}, required); err != nil {
				return err
			}
			return next(c)
		}
	}
}
