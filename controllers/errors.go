// controllers/errors.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/flowventory/backend/models"
)

// writeError maps the shared error kinds onto HTTP responses. Anything not
// recognized is treated as a store failure and reported as a 500 without
// leaking the underlying error to the client.
func writeError(c echo.Context, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: validationErr.Message})
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: validationMessage(fieldErrs)})
	}

	var duplicateErr *models.DuplicateError
	if errors.As(err, &duplicateErr) {
		return c.JSON(http.StatusConflict, models.ErrorResponse{Message: duplicateErr.Error()})
	}

	if errors.Is(err, models.ErrNotFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Resource not found"})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Server Error"})
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "invalid request"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "gte":
		return fe.Field() + " cannot be negative"
	case "oneof":
		return fe.Field() + " has an invalid value"
	default:
		return fe.Field() + " is invalid"
	}
}
