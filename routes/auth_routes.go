package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/controllers"
	"github.com/flowventory/backend/middleware"
)

// RegisterAuthRoutes sets up authentication routes
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	auth := e.Group("/api/auth")

	auth.POST("/login", authController.Login)

	me := auth.Group("/me")
	me.Use(middleware.JWTMiddleware())
	me.GET("", authController.Me)
}
