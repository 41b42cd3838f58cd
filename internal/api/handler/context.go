package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

// ctxActor extracts the session claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing user id means
// the middleware did not run or the token carries no subject, so reject with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	isAdmin, _ := c.Get("is_admin").(bool)

	return ports.Actor{UserID: userID, Email: email, IsAdmin: isAdmin}, nil
}
