// controllers/category_controller.go
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

// CategoryController handles category CRUD. Deletion goes through the
// cascade service so no item is left referencing a removed category.
type CategoryController struct {
	categories repositories.CategoryRepository
	cascade    *services.CascadeService
}

// NewCategoryController creates a new category controller
func NewCategoryController(categories repositories.CategoryRepository, cascade *services.CascadeService) *CategoryController {
	return &CategoryController{categories: categories, cascade: cascade}
}

// GetAllCategories returns all categories
func (cc *CategoryController) GetAllCategories(c echo.Context) error {
	categories, err := cc.categories.FindAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category
func (cc *CategoryController) CreateCategory(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := cc.categories.Insert(c.Request().Context(), category); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory applies a partial update to a category
func (cc *CategoryController) UpdateCategory(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid category ID",
		})
	}

	var req models.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	updated, err := cc.categories.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCategory deletes a category and cascades to its items. Repeating
// the delete succeeds with an empty cascade.
func (cc *CategoryController) DeleteCategory(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid category ID",
		})
	}

	actor, err := middleware.ExtractActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid token",
		})
	}

	removed, err := cc.cascade.DeleteCategory(c.Request().Context(), id, actor)
	if err != nil {
		return writeError(c, err)
	}

	message := "Category deleted successfully."
	if removed > 0 {
		message = fmt.Sprintf("Category deleted successfully. %d associated inventory items were also removed.", removed)
	}
	return c.JSON(http.StatusOK, models.DeleteResponse{OK: true, Message: message})
}
