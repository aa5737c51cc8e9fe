// controllers/user_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
	"github.com/flowventory/backend/utils"
)

// defaultPassword is assigned when an admin creates a user without one;
// the user is expected to change it on first login.
const defaultPassword = "password123"

// UserController handles user management (admin only)
type UserController struct {
	users repositories.UserRepository
}

// NewUserController creates a new user controller
func NewUserController(users repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// GetAllUsers returns all users. Password hashes never serialize.
func (uc *UserController) GetAllUsers(c echo.Context) error {
	users, err := uc.users.FindAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser creates a new user with a hashed password
func (uc *UserController) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid email format",
		})
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return writeError(c, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		Role:         req.Role,
		IsActive:     isActive,
		PasswordHash: hash,
	}
	if err := uc.users.Insert(c.Request().Context(), user); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser applies a partial update; a provided password is re-hashed
func (uc *UserController) UpdateUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid user ID",
		})
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	patch := models.UserPatch{
		Name:     req.Name,
		Role:     req.Role,
		IsActive: req.IsActive,
	}
	if req.Email != nil {
		email, err := utils.SanitizeEmail(*req.Email)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Message: "Invalid email format",
			})
		}
		patch.Email = &email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return writeError(c, err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := uc.users.Update(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser deletes a user; deleting a missing user still succeeds
func (uc *UserController) DeleteUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid user ID",
		})
	}

	if _, err := uc.users.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, models.DeleteResponse{OK: true})
}
