package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin gates hotel-management routes to admin accounts. Must run
// after Auth so the is_admin flag is present in context.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "admin access required"})
			}
			return next(c)
		}
	}
}
