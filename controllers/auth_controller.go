// controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/middleware"
	"github.com/flowventory/backend/models"
	"github.com/flowventory/backend/repositories"
	"github.com/flowventory/backend/utils"
)

// AuthController handles login and the current-user lookup
type AuthController struct {
	users repositories.UserRepository
}

// NewAuthController creates a new auth controller
func NewAuthController(users repositories.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// Login authenticates a user by email and password and returns a signed JWT
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid email format",
		})
	}

	user, err := ac.users.FindByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Invalid credentials",
			})
		}
		return writeError(c, err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid credentials",
		})
	}

	if !user.IsActive {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Message: "User account is inactive",
		})
	}

	token, err := middleware.GenerateJWT(user)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  *user,
	})
}

// Me returns the profile of the authenticated user
func (ac *AuthController) Me(c echo.Context) error {
	actor, err := middleware.ExtractActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid token",
		})
	}

	user, err := ac.users.FindByID(c.Request().Context(), actor.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
