// controllers/brand_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
	"github.com/flowventory/backend/services"
)

// BrandController handles brand CRUD. Deletion goes through the cascade
// service, mirroring category deletion.
type BrandController struct {
	brands  repositories.BrandRepository
	cascade *services.CascadeService
}

// NewBrandController creates a new brand controller
func NewBrandController(brands repositories.BrandRepository, cascade *services.CascadeService) *BrandController {
	return &BrandController{brands: brands, cascade: cascade}
}

// GetAllBrands returns all brands
func (bc *BrandController) GetAllBrands(c echo.Context) error {
	brands, err := bc.brands.FindAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, brands)
}

// CreateBrand creates a new brand
func (bc *BrandController) CreateBrand(c echo.Context) error {
	var req models.CreateBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	brand := &models.Brand{
		Name: req.Name,
		Logo: req.Logo,
	}
	if err := bc.brands.Insert(c.Request().Context(), brand); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, brand)
}

// UpdateBrand applies a partial update to a brand
func (bc *BrandController) UpdateBrand(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid brand ID",
		})
	}

	var req models.UpdateBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	updated, err := bc.brands.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBrand deletes a brand and cascades to its items
func (bc *BrandController) DeleteBrand(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid brand ID",
		})
	}

	actor, err := middleware.ExtractActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid token",
		})
	}

	removed, err := bc.cascade.DeleteBrand(c.Request().Context(), id, actor)
	if err != nil {
		return writeError(c, err)
	}

	message := "Brand deleted successfully."
	if removed > 0 {
		message = fmt.Sprintf("Brand deleted successfully. %d associated inventory items were also removed.", removed)
	}
	return c.JSON(http.StatusOK, models.DeleteResponse{OK: true, Message: message})
}
