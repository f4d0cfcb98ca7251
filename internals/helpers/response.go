package helper

import (
	"github.com/gofiber/fiber/v2"
)

// ✅ Success response: the wire contract has no envelope, bodies are the raw
// resource.
func JsonOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// ✅ Success response for create (201)
func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// ✅ Success response for delete (204, empty body)
func JsonNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ✅ Error response: single message string plus the status code
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
