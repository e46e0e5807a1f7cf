package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kingkebab/timetrack/internal/api/middleware"
	"github.com/kingkebab/timetrack/internal/core/domain"
)

// ctxUser extracts the account resolved by the Authenticated middleware and
// fast-fails when it is absent (route registered without the middleware, or
// a test context built without it).
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
