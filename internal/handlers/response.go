package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message, hint string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"error":    message,
		"response": hint,
	})
}
