package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
	"github.com/wrenfield/carelog/internal/services"
)

type redeemShareTokenInput struct {
	ShareToken string `json:"share_token"`
}

// RedeemShareToken links the authenticated clinician to the patient
// behind the token.
func (handler *Handler) RedeemShareToken(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.Role != models.RoleClinician {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "clinician access required"})
	}

	input := redeemShareTokenInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	patient, err := handler.authService.RedeemShareToken(user.ID, input.ShareToken)
	switch {
	case errors.Is(err, services.ErrShareTokenNotFound), errors.Is(err, services.ErrShareTokenNotPatient):
		return notFound(c, "share token not found")
	case errors.Is(err, services.ErrCareLinkExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "already linked"})
	case errors.Is(err, services.ErrSelfCareLink):
		return badRequest(c, "cannot link to yourself")
	case err != nil:
		return handler.apiError(c, fiber.StatusInternalServerError, "redeem_share_token", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"patient_id": patient.ID, "email": patient.Email})
}

func (handler *Handler) ListLinkedPatients(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.Role != models.RoleClinician {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "clinician access required"})
	}

	patients, err := handler.authService.ListLinkedPatients(user.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "list_linked_patients", err)
	}

	summaries := make([]fiber.Map, 0, len(patients))
	for _, patient := range patients {
		summaries = append(summaries, fiber.Map{"id": patient.ID, "email": patient.Email})
	}
	return c.JSON(fiber.Map{"patients": summaries})
}
