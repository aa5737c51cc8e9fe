// models/log.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Log is one append-only audit entry for an item mutation. ItemName and
// UserName are snapshots taken at write time so the entry stays readable
// after the item or user is deleted; ItemID and UserID are historical
// pointers and may reference documents that no longer exist.
type Log struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Action    string             `json:"action" bson:"action"`
	ItemID    primitive.ObjectID `json:"itemId" bson:"itemId"`
	ItemName  string             `json:"itemName" bson:"itemName"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	UserName  string             `json:"userName" bson:"userName"`
	Details   string             `json:"details,omitempty" bson:"details,omitempty"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}
