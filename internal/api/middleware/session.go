package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecofinds/marketplace/internal/core/ports"
)

// Session gates a route group on the persisted session: it resolves the
// current user id and injects it into the request context as "user_id".
// An unauthenticated request gets 401, which is the API-side equivalent
// of the login-page redirect.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := sessions.RequireAuth(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
