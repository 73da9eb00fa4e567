package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/services"
)

type entryFieldsInput struct {
	EnergyPhysical  *int    `json:"energy_physical"`
	EnergyMental    *int    `json:"energy_mental"`
	EnergyEmotional *int    `json:"energy_emotional"`
	EnergyDrive     *int    `json:"energy_drive"`
	Mood            *int    `json:"mood"`
	Reflection      *string `json:"reflection"`
	CycleDay        *int    `json:"cycle_day"`
	ClearCycleDay   bool    `json:"clear_cycle_day"`
}

func (handler *Handler) GetDayBundle(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	day, err := handler.parseDayParam(c)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	bundle, err := handler.bundleService.Bundle(c.Context(), patientID, day, handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "day_bundle", err)
	}
	return c.JSON(bundle)
}

func (handler *Handler) UpdateDayEntry(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	day, err := handler.parseDayParam(c)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	input := entryFieldsInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	for _, score := range []*int{input.EnergyPhysical, input.EnergyMental, input.EnergyEmotional, input.EnergyDrive, input.Mood} {
		if score != nil && !isValidScore(*score) {
			return badRequest(c, "score out of range")
		}
	}
	if input.CycleDay != nil && *input.CycleDay < 0 {
		return badRequest(c, "invalid cycle day")
	}

	entry, err := handler.entryService.UpdateEntryFields(patientID, day, services.EntryFieldUpdate{
		EnergyPhysical:  input.EnergyPhysical,
		EnergyMental:    input.EnergyMental,
		EnergyEmotional: input.EnergyEmotional,
		EnergyDrive:     input.EnergyDrive,
		Mood:            input.Mood,
		Reflection:      input.Reflection,
		CycleDay:        input.CycleDay,
		ClearCycleDay:   input.ClearCycleDay,
	}, handler.location)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "update_entry", err)
	}
	return c.JSON(entry)
}
