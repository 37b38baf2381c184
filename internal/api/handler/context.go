package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both claims must be
// present, their absence proves the middleware did not run.
func ctxIdentity(c echo.Context) (username, userID string, err error) {
	username, _ = c.Get("username").(string)
	userID, _ = c.Get("user_id").(string)
	if username == "" || userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, userID, nil
}
