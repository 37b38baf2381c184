package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/epfafrica/user-service/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, rec.Body.String()
}

func TestErrorHandler_DuplicateErrorsAreClientInput(t *testing.T) {
	for _, err := range []error{
		domain.ErrDuplicateUsername,
		domain.ErrDuplicateEmail,
		domain.ErrDuplicateIdentity,
	} {
		code, _ := render(t, err)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", err, code)
		}
	}
}

func TestErrorHandler_InactiveRendersLikeInvalidCredentials(t *testing.T) {
	// Account state must not leak: the two failures are byte-identical.
	invalidCode, invalidBody := render(t, domain.ErrInvalidCredentials)
	inactiveCode, inactiveBody := render(t, domain.ErrInactiveAccount)

	if invalidCode != http.StatusUnauthorized || inactiveCode != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", invalidCode, inactiveCode)
	}
	if invalidBody != inactiveBody {
		t.Fatalf("responses differ: %q vs %q", invalidBody, inactiveBody)
	}
}

func TestErrorHandler_TokenErrorsUnauthorized(t *testing.T) {
	if code, _ := render(t, domain.ErrTokenExpired); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", code)
	}
	if code, _ := render(t, domain.ErrTokenInvalid); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", code)
	}
}

func TestErrorHandler_Throttled(t *testing.T) {
	if code, _ := render(t, domain.ErrTooManyAttempts); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := render(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body != `{"error":"internal server error"}`+"\n" {
		t.Fatalf("internal detail leaked: %s", body)
	}
}
