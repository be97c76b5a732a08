package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the acting user id injected by the Session middleware.
// Presence proves the middleware ran; gated handlers fail fast without it
// rather than calling a service with an empty actor.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return userID, nil
}
