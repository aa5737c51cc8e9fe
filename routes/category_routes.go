package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/controllers"
	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
)

// RegisterCategoryRoutes sets up all category-related routes. Reads are open
// to any authenticated user; mutations are admin only. Deleting a category
// cascades to its items.
func RegisterCategoryRoutes(e *echo.Echo, categoryController *controllers.CategoryController) {
	categories := e.Group("/api/categories")
	categories.Use(middleware.JWTMiddleware())

	categories.GET("", categoryController.GetAllCategories)

	admin := middleware.RequireRole(models.RoleAdmin)
	categories.POST("", categoryController.CreateCategory, admin)
	categories.PATCH("/:id", categoryController.UpdateCategory, admin)
	categories.DELETE("/:id", categoryController.DeleteCategory, admin)
}
