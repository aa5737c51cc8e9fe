// controllers/item_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/services"
)

// ItemController handles inventory item CRUD through the item service,
// which pairs every mutation with an audit entry.
type ItemController struct {
	items *services.ItemService
}

// NewItemController creates a new item controller
func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{items: items}
}

// GetAllItems returns all items with category and brand resolved
func (ic *ItemController) GetAllItems(c echo.Context) error {
	items, err := ic.items.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateItem creates a new item attributed to the authenticated user
func (ic *ItemController) CreateItem(c echo.Context) error {
	var req models.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	actor, err := middleware.ExtractActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid token",
		})
	}

	item, err := ic.items.Create(c.Request().Context(), req, actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem applies a partial update to an item
func (ic *ItemController) UpdateItem(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid item ID",
		})
	}

	var req models.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	actor, err := middleware.ExtractActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid token",
		})
	}

	item, err := ic.items.Update(c.Request().Context(), id, req, actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem deletes an item. The response does not distinguish "deleted
// now" from "already gone".
func (ic *ItemController) DeleteItem(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid item ID",
		})
	}

	actor, err := middleware.ExtractActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid token",
		})
	}

	if err := ic.items.Delete(c.Request().Context(), id, actor); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, models.DeleteResponse{OK: true})
}
