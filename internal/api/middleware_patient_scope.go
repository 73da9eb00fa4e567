package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
)

// PatientScope resolves which patient's data the request reads. A patient
// is always scoped to themselves; a clinician must name a linked patient
// via the patient_id query parameter. Runs after AuthRequired.
func (handler *Handler) PatientScope(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if user.Role == models.RolePatient {
		c.Locals(contextPatientKey, user.ID)
		return c.Next()
	}

	raw := strings.TrimSpace(c.Query("patient_id"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "patient_id required"})
	}
	patientID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || patientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid patient_id"})
	}

	linked, err := handler.authService.IsLinked(user.ID, uint(patientID))
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "resolve_patient", err)
	}
	if !linked {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "patient not linked"})
	}

	c.Locals(contextPatientKey, uint(patientID))
	return c.Next()
}

// PatientOnly guards write routes: clinicians hold read access only.
func (handler *Handler) PatientOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.Role != models.RolePatient {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "patient access required"})
	}
	return c.Next()
}
