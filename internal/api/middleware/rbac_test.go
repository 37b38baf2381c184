package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/epfafrica/user-service/internal/core/domain"
)

func rbacContext(e *echo.Echo, roles []string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set("roles", roles)
	}
	return c, rec
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, []string{domain.RoleUser, domain.RoleAdmin})

	called := false
	mw := RBAC(domain.RoleAdmin)
	if err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_RejectsMissingRole(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, []string{domain.RoleUser})

	mw := RBAC(domain.RoleAdmin)
	if err := mw(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_RejectsAbsentClaims(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, nil)

	mw := RBAC(domain.RoleAdmin)
	if err := mw(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
