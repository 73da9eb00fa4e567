package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
)

type formulationInput struct {
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Schedule  string `json:"schedule"`
	StartDate string `json:"start_date"`
	StopDate  string `json:"stop_date"`
	ClearStop bool   `json:"clear_stop"`
}

type treatmentInput struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	StartDate string `json:"start_date"`
	StopDate  string `json:"stop_date"`
	ClearStop bool   `json:"clear_stop"`
}

type adherenceStatusInput struct {
	Status string `json:"status"`
}

func (handler *Handler) parseRegimenDate(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dayParamLayout, trimmed, handler.location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (handler *Handler) ListFormulations(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	items, err := handler.repositories.Regimen.ListFormulationsByPatient(patientID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "list_formulations", err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateFormulation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	input := formulationInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name required")
	}
	start, err := handler.parseRegimenDate(input.StartDate)
	if err != nil || start == nil {
		return badRequest(c, "invalid start date")
	}
	stop, err := handler.parseRegimenDate(input.StopDate)
	if err != nil {
		return badRequest(c, "invalid stop date")
	}
	if stop != nil && stop.Before(*start) {
		return badRequest(c, "stop before start")
	}

	item := models.Formulation{
		PatientID: user.ID,
		Name:      strings.TrimSpace(input.Name),
		Dose:      input.Dose,
		Schedule:  input.Schedule,
		StartDate: *start,
		StopDate:  stop,
	}
	if err := handler.repositories.Regimen.CreateFormulation(&item); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_formulation", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateFormulation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	formulationID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	item, found, err := handler.repositories.Regimen.FindFormulationByID(user.ID, formulationID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "update_formulation", err)
	}
	if !found {
		return notFound(c, "formulation not found")
	}

	input := formulationInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if input.Dose != "" {
		item.Dose = input.Dose
	}
	if input.Schedule != "" {
		item.Schedule = input.Schedule
	}
	if start, err := handler.parseRegimenDate(input.StartDate); err != nil {
		return badRequest(c, "invalid start date")
	} else if start != nil {
		item.StartDate = *start
	}
	if stop, err := handler.parseRegimenDate(input.StopDate); err != nil {
		return badRequest(c, "invalid stop date")
	} else if stop != nil {
		item.StopDate = stop
	} else if input.ClearStop {
		item.StopDate = nil
	}
	if item.StopDate != nil && item.StopDate.Before(item.StartDate) {
		return badRequest(c, "stop before start")
	}

	if err := handler.repositories.Regimen.SaveFormulation(&item); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "update_formulation", err)
	}
	return c.JSON(item)
}

func (handler *Handler) ListTreatments(c *fiber.Ctx) error {
	patientID, ok := currentPatientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	items, err := handler.repositories.Regimen.ListTreatmentsByPatient(patientID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "list_treatments", err)
	}
	return c.JSON(items)
}

func (handler *Handler) CreateTreatment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	input := treatmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name required")
	}
	start, err := handler.parseRegimenDate(input.StartDate)
	if err != nil || start == nil {
		return badRequest(c, "invalid start date")
	}
	stop, err := handler.parseRegimenDate(input.StopDate)
	if err != nil {
		return badRequest(c, "invalid stop date")
	}
	if stop != nil && stop.Before(*start) {
		return badRequest(c, "stop before start")
	}

	item := models.Treatment{
		PatientID: user.ID,
		Name:      strings.TrimSpace(input.Name),
		Kind:      input.Kind,
		StartDate: *start,
		StopDate:  stop,
	}
	if err := handler.repositories.Regimen.CreateTreatment(&item); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_treatment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateTreatment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	treatmentID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	item, found, err := handler.repositories.Regimen.FindTreatmentByID(user.ID, treatmentID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "update_treatment", err)
	}
	if !found {
		return notFound(c, "treatment not found")
	}

	input := treatmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if input.Kind != "" {
		item.Kind = input.Kind
	}
	if start, err := handler.parseRegimenDate(input.StartDate); err != nil {
		return badRequest(c, "invalid start date")
	} else if start != nil {
		item.StartDate = *start
	}
	if stop, err := handler.parseRegimenDate(input.StopDate); err != nil {
		return badRequest(c, "invalid stop date")
	} else if stop != nil {
		item.StopDate = stop
	} else if input.ClearStop {
		item.StopDate = nil
	}
	if item.StopDate != nil && item.StopDate.Before(item.StartDate) {
		return badRequest(c, "stop before start")
	}

	if err := handler.repositories.Regimen.SaveTreatment(&item); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "update_treatment", err)
	}
	return c.JSON(item)
}

func (handler *Handler) UpsertFormulationIntake(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "upsert_intake", err)
	}
	formulationID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	input := adherenceStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if !models.IsIntakeStatus(input.Status) {
		return badRequest(c, "invalid status")
	}

	_, found, err := handler.repositories.Regimen.FindFormulationByID(patientID, formulationID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_intake", err)
	}
	if !found {
		return notFound(c, "formulation not found")
	}

	row, found, err := handler.repositories.Regimen.FindIntake(entry.ID, formulationID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_intake", err)
	}
	row.Status = input.Status
	if found {
		err = handler.repositories.Regimen.SaveIntake(&row)
	} else {
		row.PatientID = patientID
		row.DailyEntryID = entry.ID
		row.FormulationID = formulationID
		err = handler.repositories.Regimen.CreateIntake(&row)
	}
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_intake", err)
	}
	return c.JSON(row)
}

func (handler *Handler) UpsertTreatmentCompletion(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "upsert_completion", err)
	}
	treatmentID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	input := adherenceStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if !models.IsCompletionStatus(input.Status) {
		return badRequest(c, "invalid status")
	}

	_, found, err := handler.repositories.Regimen.FindTreatmentByID(patientID, treatmentID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_completion", err)
	}
	if !found {
		return notFound(c, "treatment not found")
	}

	row, found, err := handler.repositories.Regimen.FindCompletion(entry.ID, treatmentID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_completion", err)
	}
	row.Status = input.Status
	if found {
		err = handler.repositories.Regimen.SaveCompletion(&row)
	} else {
		row.PatientID = patientID
		row.DailyEntryID = entry.ID
		row.TreatmentID = treatmentID
		err = handler.repositories.Regimen.CreateCompletion(&row)
	}
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_completion", err)
	}
	return c.JSON(row)
}
