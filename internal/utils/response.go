// Package utils provides small helpers shared by handlers: the response
// envelope and nothing else.
package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Success wraps data in the standard envelope with a request timestamp.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func BadGateway(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadGateway, message)
}

func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
