package http

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse provides a consistent error structure for API responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Error allows ErrorResponse to satisfy the error interface.
func (e ErrorResponse) Error() string {
	return e.Message
}

// Respond writes a JSON response with the given status code and body.
func Respond(c *fiber.Ctx, status int, body any) error {
	return c.Status(status).JSON(body)
}

// RespondError writes a structured error response using the ErrorResponse
// schema. This is the canonical way to write error responses and ensures
// consistency across all handlers.
func RespondError(c *fiber.Ctx, status int, title, message string) error {
	return Respond(c, status, ErrorResponse{
		Code:    strconv.Itoa(status),
		Title:   title,
		Message: message,
	})
}

// OK sends an HTTP 200 OK response with a custom body.
func OK(c *fiber.Ctx, body any) error {
	return Respond(c, http.StatusOK, body)
}

// Created sends an HTTP 201 Created response with a custom body.
func Created(c *fiber.Ctx, body any) error {
	return Respond(c, http.StatusCreated, body)
}

// BadRequestError writes a 400 Bad Request error response.
func BadRequestError(c *fiber.Ctx, title, message string) error {
	return RespondError(c, fiber.StatusBadRequest, title, message)
}

// NotFoundError writes a 404 Not Found error response.
func NotFoundError(c *fiber.Ctx, title, message string) error {
	return RespondError(c, fiber.StatusNotFound, title, message)
}

// ConflictError writes a 409 Conflict error response.
func ConflictError(c *fiber.Ctx, title, message string) error {
	return RespondError(c, fiber.StatusConflict, title, message)
}

// UnprocessableEntityError writes a 422 Unprocessable Entity error response.
func UnprocessableEntityError(c *fiber.Ctx, title, message string) error {
	return RespondError(c, fiber.StatusUnprocessableEntity, title, message)
}

// InternalServerError writes a 500 Internal Server Error response.
// It always returns a generic message to avoid leaking internal details.
func InternalServerError(c *fiber.Ctx) error {
	return RespondError(c, fiber.StatusInternalServerError, "internal_error", "internal server error")
}
