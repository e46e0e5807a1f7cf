package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kingkebab/timetrack/internal/core/domain"
)

// AdminOnly gates a route on the admin flag of the account resolved by
// Authenticated. The 403 here is deliberately distinct from the 401s of the
// auth middleware: the caller is known, just not privileged.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(userContextKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
