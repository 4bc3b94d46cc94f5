package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

func runRBAC(t *testing.T, role interface{}, allowed ...domain.Role) (called bool, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if role != nil {
		c.Set(CtxRole, role)
		c.Set(CtxUsername, "tester")
	}

	mw := RBAC(allowed...)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	return called, handler(c)
}

func TestRBAC_AdminRejectedForSuperAdminOnly(t *testing.T) {
	called, err := runRBAC(t, domain.RoleAdmin, domain.RoleSuperAdmin)
	if called {
		t.Fatalf("handler must not run")
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_AdminAcceptedWhenAllowed(t *testing.T) {
	called, err := runRBAC(t, domain.RoleAdmin, domain.RoleAdmin, domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestRBAC_SuperAdminAccepted(t *testing.T) {
	called, err := runRBAC(t, domain.RoleSuperAdmin, domain.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestRBAC_EmptySetAllowsAnyAuthenticated(t *testing.T) {
	called, err := runRBAC(t, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestRBAC_MissingClaimsForbidden(t *testing.T) {
	called, err := runRBAC(t, nil, domain.RoleAdmin)
	if called {
		t.Fatalf("handler must not run without claims")
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
