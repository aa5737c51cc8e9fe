// models/brand.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand is a product manufacturer. Name is unique across the collection.
type Brand struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Logo      string             `json:"logo,omitempty" bson:"logo,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateBrandRequest payload for creating a brand
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required"`
	Logo string `json:"logo"`
}

// UpdateBrandRequest is a partial update; nil fields are left untouched
type UpdateBrandRequest struct {
	Name *string `json:"name"`
	Logo *string `json:"logo"`
}
