// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User model
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Role         string             `json:"role" bson:"role"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// Actor identifies the authenticated user an operation is attributed to.
// Name is carried alongside the ID so audit entries can snapshot it.
type Actor struct {
	ID   primitive.ObjectID
	Name string
}

// CreateUserRequest is the admin payload for creating a user
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
	Password string `json:"password"`
	IsActive *bool  `json:"isActive"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
// A non-empty Password is re-hashed before persisting.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin staff"`
	Password *string `json:"password"`
	IsActive *bool   `json:"isActive"`
}

// UserPatch is the persisted form of UpdateUserRequest: the plain password,
// if any, has already been hashed by the caller.
type UserPatch struct {
	Name         *string
	Email        *string
	Role         *string
	IsActive     *bool
	PasswordHash *string
}

// LoginRequest for user authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the signed token together with the user profile
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
