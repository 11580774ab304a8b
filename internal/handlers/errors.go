package handlers

import (
	"fmt"

	"gudang/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a domain error kind to an HTTP status and renders a
// JSON body. Unknown errors become 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case models.IsValidation(err):
		status = fiber.StatusBadRequest
	case models.IsNotFound(err):
		status = fiber.StatusNotFound
	case models.IsConflict(err):
		status = fiber.StatusConflict
	case models.IsInvariant(err):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// formatValidationErrors turns validator failures into readable
// field-level messages.
func formatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return messages
}
