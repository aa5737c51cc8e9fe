// models/item.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item stock statuses
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// Item as stored: category, brand and createdBy are references by ID.
// The referenced category/brand must exist when the item is created; the
// cascade on category/brand deletion guarantees no item outlives them.
type Item struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	SKU         string             `json:"sku" bson:"sku"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Price       float64            `json:"price" bson:"price"`
	Description string             `json:"description" bson:"description"`
	Status      string             `json:"status" bson:"status"`
	Category    primitive.ObjectID `json:"category" bson:"category"`
	Brand       primitive.ObjectID `json:"brand" bson:"brand"`
	CreatedBy   primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PopulatedItem is an item with its category and brand resolved for display.
// A reference that no longer resolves is returned as null rather than an error.
type PopulatedItem struct {
	ID          primitive.ObjectID `json:"id,omitempty"`
	Name        string             `json:"name"`
	SKU         string             `json:"sku"`
	Quantity    int                `json:"quantity"`
	Price       float64            `json:"price"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	Category    *Category          `json:"category"`
	Brand       *Brand             `json:"brand"`
	CreatedBy   primitive.ObjectID `json:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CreateItemRequest payload for creating an item
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	SKU         string  `json:"sku" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=in-stock low-stock out-of-stock"`
	Category    string  `json:"category" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
}

// UpdateItemRequest is a partial update; nil fields are left untouched
type UpdateItemRequest struct {
	Name        *string  `json:"name"`
	SKU         *string  `json:"sku"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" validate:"omitempty,oneof=in-stock low-stock out-of-stock"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
}

// StatusForQuantity derives a stock status when the client does not send one.
func StatusForQuantity(qty int) string {
	if qty <= 0 {
		return StatusOutOfStock
	}
	if qty <= 10 {
		return StatusLowStock
	}
	return StatusInStock
}
