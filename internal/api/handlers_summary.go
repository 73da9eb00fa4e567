package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) trackingWindowDays(patientID uint) int {
	config, err := handler.configService.GetOrCreate(patientID)
	if err != nil {
		handler.logger.Warn().Str("op", "tracking_window").Err(err).Msg("falling back to default window")
		return 0
	}
	return config.TrackingWindowDays
}

func (handler *Handler) GetDailySummary(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	from, to, err := handler.parseRangeQuery(c, handler.trackingWindowDays(patientID))
	if err != nil {
		return badRequest(c, "invalid range")
	}

	summaries, err := handler.summaryService.DailyRange(c.Context(), patientID, from, to, handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "daily_summary", err)
	}
	return c.JSON(fiber.Map{"days": summaries})
}

func (handler *Handler) GetCycleSummary(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	from, to, err := handler.parseRangeQuery(c, handler.trackingWindowDays(patientID))
	if err != nil {
		return badRequest(c, "invalid range")
	}

	summaries, err := handler.cycleRangeService.CycleRange(c.Context(), patientID, from, to, handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "cycle_summary", err)
	}
	return c.JSON(fiber.Map{"days": summaries})
}
