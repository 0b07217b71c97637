package handlers

import "github.com/gofiber/fiber/v2"

// Controller-level failures use an "error" body; guard and admin outcomes
// use a "message" body. Both shapes are part of the inherited client
// contract.

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func jsonMessage(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// jsonStoreError echoes the driver error text in "details". Known hardening
// gap carried over from the original contract.
func jsonStoreError(c *fiber.Ctx, context string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   context,
		"details": err.Error(),
	})
}
