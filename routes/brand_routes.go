package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/controllers"
	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
)

// RegisterBrandRoutes sets up all brand-related routes; same access rules as
// categories.
func RegisterBrandRoutes(e *echo.Echo, brandController *controllers.BrandController) {
	brands := e.Group("/api/brands")
	brands.Use(middleware.JWTMiddleware())

	brands.GET("", brandController.GetAllBrands)

	admin := middleware.RequireRole(models.RoleAdmin)
	brands.POST("", brandController.CreateBrand, admin)
	brands.PATCH("/:id", brandController.UpdateBrand, admin)
	brands.DELETE("/:id", brandController.DeleteBrand, admin)
}
