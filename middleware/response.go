package middleware

import "github.com/gofiber/fiber/v2"

// JsonError writes the flat error body every failing endpoint uses.
func JsonError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// JsonMessage writes a confirmation body for operations that return no
// entity, such as deletes.
func JsonMessage(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}
