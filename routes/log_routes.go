package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/controllers"
	"github.com/flowventory/backend/middleware"
)

// RegisterLogRoutes sets up the audit log listing route
func RegisterLogRoutes(e *echo.Echo, logController *controllers.LogController) {
	logs := e.Group("/api/logs")
	logs.Use(middleware.JWTMiddleware())

	logs.GET("", logController.GetRecentLogs)
}
