package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
)

type cycleLogInput struct {
	CycleDay             *int     `json:"cycle_day"`
	ClearCycleDay        bool     `json:"clear_cycle_day"`
	PhysicalSymptomKeys  []string `json:"physical_symptom_keys"`
	EmotionalSymptomKeys []string `json:"emotional_symptom_keys"`
	BleedingQuantity     string   `json:"bleeding_quantity"`
	BleedingColor        string   `json:"bleeding_color"`
	BleedingVolume       string   `json:"bleeding_volume"`
	HasClots             bool     `json:"has_clots"`
	HasMucus             bool     `json:"has_mucus"`
}

type cycleCommentInput struct {
	Body string `json:"body"`
}

func (handler *Handler) UpsertCycleLog(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "upsert_cycle_log", err)
	}
	input := cycleLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.CycleDay != nil && *input.CycleDay < 0 {
		return badRequest(c, "invalid cycle day")
	}
	if !isValidBleedingQuantity(input.BleedingQuantity) {
		return badRequest(c, "invalid bleeding quantity")
	}

	cycleLog, err := handler.entryService.GetOrCreateCycleLog(patientID, entry.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_cycle_log", err)
	}

	if input.CycleDay != nil {
		cycleLog.CycleDay = input.CycleDay
	} else if input.ClearCycleDay {
		cycleLog.CycleDay = nil
	}
	if input.PhysicalSymptomKeys != nil {
		cycleLog.PhysicalSymptomKeys = input.PhysicalSymptomKeys
	}
	if input.EmotionalSymptomKeys != nil {
		cycleLog.EmotionalSymptomKeys = input.EmotionalSymptomKeys
	}
	cycleLog.BleedingQuantity = input.BleedingQuantity
	cycleLog.BleedingColor = input.BleedingColor
	cycleLog.BleedingVolume = input.BleedingVolume
	cycleLog.HasClots = input.HasClots
	cycleLog.HasMucus = input.HasMucus

	if err := handler.repositories.Cycles.SaveCycleLog(&cycleLog); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_cycle_log", err)
	}
	return c.JSON(cycleLog)
}

// AddCycleComment accepts comments from the patient and from linked
// clinicians; it is the one write clinicians are allowed.
func (handler *Handler) AddCycleComment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "add_cycle_comment", err)
	}

	input := cycleCommentInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Body) == "" {
		return badRequest(c, "body required")
	}

	cycleLog, err := handler.entryService.GetOrCreateCycleLog(patientID, entry.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "add_cycle_comment", err)
	}

	authorRole := models.CommentAuthorPatient
	if user.Role == models.RoleClinician {
		authorRole = models.CommentAuthorClinician
	}
	comment := models.CycleComment{
		CycleLogID: cycleLog.ID,
		AuthorID:   user.ID,
		AuthorRole: authorRole,
		Body:       strings.TrimSpace(input.Body),
	}
	if err := handler.repositories.Cycles.CreateComment(&comment); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "add_cycle_comment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
