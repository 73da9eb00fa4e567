package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/services"
)

type configInput struct {
	TrackingWindowDays *int `json:"tracking_window_days"`
	EditWindowDays     *int `json:"edit_window_days"`
}

func (handler *Handler) GetConfig(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	config, err := handler.configService.GetOrCreate(patientID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "get_config", err)
	}
	return c.JSON(config)
}

func (handler *Handler) UpdateConfig(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	input := configInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	config, err := handler.configService.Update(user.ID, services.ConfigUpdate{
		TrackingWindowDays: input.TrackingWindowDays,
		EditWindowDays:     input.EditWindowDays,
	})
	switch {
	case errors.Is(err, services.ErrTrackingWindowOutOfRange), errors.Is(err, services.ErrEditWindowOutOfRange):
		return badRequest(c, "window out of range")
	case err != nil:
		return handler.apiError(c, fiber.StatusInternalServerError, "update_config", err)
	}
	return c.JSON(config)
}

func (handler *Handler) GetShareToken(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	return c.JSON(fiber.Map{"share_token": user.ShareToken})
}

func (handler *Handler) RotateShareToken(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	token, err := handler.authService.RotateShareToken(user.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "rotate_share_token", err)
	}
	return c.JSON(fiber.Map{"share_token": token})
}
