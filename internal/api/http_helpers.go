package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) apiError(c *fiber.Ctx, status int, op string, err error) error {
	handler.logger.Error().Str("op", op).Err(err).Msg("request failed")
	return c.Status(status).JSON(fiber.Map{"error": op + " failed"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}
