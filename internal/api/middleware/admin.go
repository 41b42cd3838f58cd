package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly guards the admin and slaughter route groups. Non-admin sessions
// are refused before the handler runs.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "administrator access required"})
			}
			return next(c)
		}
	}
}
