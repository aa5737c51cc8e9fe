package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/controllers"
	"github.com/flowventory/backend/middleware"
)

// RegisterItemRoutes sets up all item-related routes. Any authenticated user
// can mutate items; every mutation writes an audit entry.
func RegisterItemRoutes(e *echo.Echo, itemController *controllers.ItemController) {
	items := e.Group("/api/items")
	items.Use(middleware.JWTMiddleware())

	items.GET("", itemController.GetAllItems)
	items.POST("", itemController.CreateItem)
	items.PATCH("/:id", itemController.UpdateItem)
	items.DELETE("/:id", itemController.DeleteItem)
}
