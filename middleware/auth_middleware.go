// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/models"
)

// RequireRole checks if the authenticated user has one of the allowed roles.
// Category, brand and user mutations are gated on the admin role; item
// mutations are open to any authenticated user.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := ExtractRole(c)
			if role == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Message: "Authentication failed: role not found",
				})
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, models.ErrorResponse{
				Message: "Admin only",
			})
		}
	}
}
