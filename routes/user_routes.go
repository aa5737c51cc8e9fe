package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/controllers"
	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
)

// RegisterUserRoutes sets up user management routes, all admin only
func RegisterUserRoutes(e *echo.Echo, userController *controllers.UserController) {
	users := e.Group("/api/users")
	users.Use(middleware.JWTMiddleware())
	users.Use(middleware.RequireRole(models.RoleAdmin))

	users.GET("", userController.GetAllUsers)
	users.POST("", userController.CreateUser)
	users.PATCH("/:id", userController.UpdateUser)
	users.DELETE("/:id", userController.DeleteUser)
}
