package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
)

type savedItemInput struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

func (handler *Handler) ListSavedItems(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	kind := strings.TrimSpace(c.Query("kind"))
	if kind != "" && !models.IsSavedItemKind(kind) {
		return badRequest(c, "invalid kind")
	}
	items, err := handler.repositories.SavedItems.ListByPatient(patientID, kind)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "list_saved_items", err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateSavedItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	input := savedItemInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if !models.IsSavedItemKind(input.Kind) {
		return badRequest(c, "invalid kind")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name required")
	}

	item := models.SavedItem{
		PatientID: user.ID,
		Kind:      input.Kind,
		Name:      strings.TrimSpace(input.Name),
		Detail:    input.Detail,
	}
	if err := handler.repositories.SavedItems.Create(&item); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_saved_item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) DeleteSavedItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := handler.repositories.SavedItems.Delete(user.ID, itemID); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "delete_saved_item", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
