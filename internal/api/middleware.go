package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
)

const (
	authCookieName    = "carelog_auth"
	contextUserKey    = "current_user"
	contextPatientKey = "current_patient_id"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentPatientID(c *fiber.Ctx) (uint, bool) {
	patientID, ok := c.Locals(contextPatientKey).(uint)
	return patientID, ok
}
