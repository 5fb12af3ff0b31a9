package utils

import (
	"github.com/gofiber/fiber/v2"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ErrorResponse sends an error with a message only.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorBody{Message: message})
}

// ValidationErrorResponse sends a 400 with field-level detail.
func ValidationErrorResponse(c *fiber.Ctx, message string, errs []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Message: message, Errors: errs})
}

// NotFoundResponse sends a 404 with a resource-specific message.
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorBody{Message: message})
}

// MessageResponse sends a 200 with a message-only body, used by delete
// endpoints.
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}
