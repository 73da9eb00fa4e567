package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/models"
)

type sleepBlockInput struct {
	BedTime         string `json:"bed_time"`
	WakeTime        string `json:"wake_time"`
	DurationMinutes *int   `json:"duration_minutes"`
	Quality         *int   `json:"quality"`
	Notes           string `json:"notes"`
}

type morningEntryInput struct {
	WakeTime    string `json:"wake_time"`
	RestedScore *int   `json:"rested_score"`
	Notes       string `json:"notes"`
}

type foodEventInput struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	SavedItemID *uint  `json:"saved_item_id"`
	Notes       string `json:"notes"`
}

type fluidTotalsInput struct {
	WaterMl    int `json:"water_ml"`
	CaffeineMl int `json:"caffeine_ml"`
	OtherMl    int `json:"other_ml"`
}

type bowelMovementInput struct {
	Time         string `json:"time"`
	BristolScale *int   `json:"bristol_scale"`
	Notes        string `json:"notes"`
}

type exerciseEventInput struct {
	Time            string `json:"time"`
	Description     string `json:"description"`
	DurationMinutes *int   `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	SavedItemID     *uint  `json:"saved_item_id"`
}

type vitalReadingInput struct {
	Type           string   `json:"type"`
	Value          float64  `json:"value"`
	SecondaryValue *float64 `json:"secondary_value"`
	Unit           string   `json:"unit"`
	Time           string   `json:"time"`
}

type medicationEventInput struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Dose        string `json:"dose"`
	SavedItemID *uint  `json:"saved_item_id"`
	Notes       string `json:"notes"`
}

type symptomEventInput struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Severity    *int   `json:"severity"`
	SavedItemID *uint  `json:"saved_item_id"`
	Notes       string `json:"notes"`
}

type regimenNoteInput struct {
	Notes string `json:"notes"`
}

func (handler *Handler) resolveDayEntry(c *fiber.Ctx) (uint, models.DailyEntry, error) {
	patientID, ok := currentPatientID(c)
	if !ok {
		return 0, models.DailyEntry{}, fiber.ErrUnauthorized
	}
	day, err := handler.parseDayParam(c)
	if err != nil {
		return 0, models.DailyEntry{}, fiber.ErrBadRequest
	}
	entry, err := handler.entryService.GetOrCreateEntry(patientID, day, handler.location)
	if err != nil {
		return 0, models.DailyEntry{}, err
	}
	return patientID, entry, nil
}

func (handler *Handler) dayEntryError(c *fiber.Ctx, op string, err error) error {
	switch err {
	case fiber.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	case fiber.ErrBadRequest:
		return badRequest(c, "invalid date")
	default:
		return handler.apiError(c, fiber.StatusInternalServerError, op, err)
	}
}

func (handler *Handler) CreateSleepBlock(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "create_sleep_block", err)
	}
	input := sleepBlockInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.Quality != nil && !isValidScore(*input.Quality) {
		return badRequest(c, "quality out of range")
	}

	record := models.SleepBlock{
		PatientID:       patientID,
		DailyEntryID:    entry.ID,
		BedTime:         input.BedTime,
		WakeTime:        input.WakeTime,
		DurationMinutes: input.DurationMinutes,
		Quality:         input.Quality,
		Notes:           input.Notes,
	}
	if err := handler.repositories.Records.CreateSleepBlock(&record); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_sleep_block", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpsertMorningEntry(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "upsert_morning_entry", err)
	}
	input := morningEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.RestedScore != nil && !isValidScore(*input.RestedScore) {
		return badRequest(c, "rested score out of range")
	}

	record, found, err := handler.repositories.Records.FindMorningEntryByEntry(entry.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_morning_entry", err)
	}
	record.WakeTime = input.WakeTime
	record.RestedScore = input.RestedScore
	record.Notes = input.Notes
	if found {
		err = handler.repositories.Records.SaveMorningEntry(&record)
	} else {
		record.PatientID = patientID
		record.DailyEntryID = entry.ID
		err = handler.repositories.Records.CreateMorningEntry(&record)
	}
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_morning_entry", err)
	}
	return c.JSON(record)
}

func (handler *Handler) CreateFoodEvent(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "create_food_event", err)
	}
	input := foodEventInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Description) == "" {
		return badRequest(c, "description required")
	}

	record := models.FoodEvent{
		PatientID:    patientID,
		DailyEntryID: entry.ID,
		Time:         input.Time,
		Description:  input.Description,
		SavedItemID:  input.SavedItemID,
		Notes:        input.Notes,
	}
	if err := handler.repositories.Records.CreateFoodEvent(&record); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_food_event", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpsertFluidTotals(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "upsert_fluid_totals", err)
	}
	input := fluidTotalsInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.WaterMl < 0 || input.CaffeineMl < 0 || input.OtherMl < 0 {
		return badRequest(c, "negative volume")
	}

	record, found, err := handler.repositories.Records.FindFluidTotalsByEntry(entry.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_fluid_totals", err)
	}
	record.WaterMl = input.WaterMl
	record.CaffeineMl = input.CaffeineMl
	record.OtherMl = input.OtherMl
	if found {
		err = handler.repositories.Records.SaveFluidTotals(&record)
	} else {
		record.PatientID = patientID
		record.DailyEntryID = entry.ID
		err = handler.repositories.Records.CreateFluidTotals(&record)
	}
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_fluid_totals", err)
	}
	return c.JSON(record)
}

func (handler *Handler) CreateBowelMovement(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "create_bowel_movement", err)
	}
	input := bowelMovementInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.BristolScale != nil && !isValidBristolScale(*input.BristolScale) {
		return badRequest(c, "bristol scale out of range")
	}

	record := models.BowelMovement{
		PatientID:    patientID,
		DailyEntryID: entry.ID,
		Time:         input.Time,
		BristolScale: input.BristolScale,
		Notes:        input.Notes,
	}
	if err := handler.repositories.Records.CreateBowelMovement(&record); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_bowel_movement", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) CreateExerciseEvent(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "create_exercise_event", err)
	}
	input := exerciseEventInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if input.DurationMinutes != nil && *input.DurationMinutes < 0 {
		return badRequest(c, "negative duration")
	}

	record := models.ExerciseEvent{
		PatientID:       patientID,
		DailyEntryID:    entry.ID,
		Time:            input.Time,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Intensity:       input.Intensity,
		SavedItemID:     input.SavedItemID,
	}
	if err := handler.repositories.Records.CreateExerciseEvent(&record); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_exercise_event", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) CreateVitalReading(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "create_vital_reading", err)
	}
	input := vitalReadingInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if !isValidVitalType(input.Type) {
		return badRequest(c, "invalid vital type")
	}
	if input.Type == models.VitalBloodPressure && input.SecondaryValue == nil {
		return badRequest(c, "blood pressure requires a secondary value")
	}

	record := models.VitalReading{
		PatientID:      patientID,
		DailyEntryID:   entry.ID,
		Type:           input.Type,
		Value:          input.Value,
		SecondaryValue: input.SecondaryValue,
		Unit:           input.Unit,
		Time:           input.Time,
	}
	if err := handler.repositories.Records.CreateVitalReading(&record); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_vital_reading", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) CreateMedicationEvent(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "create_medication_event", err)
	}
	input := medicationEventInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name required")
	}

	record := models.MedicationEvent{
		PatientID:    patientID,
		DailyEntryID: entry.ID,
		Time:         input.Time,
		Name:         input.Name,
		Dose:         input.Dose,
		SavedItemID:  input.SavedItemID,
		Notes:        input.Notes,
	}
	if err := handler.repositories.Records.CreateMedicationEvent(&record); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_medication_event", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) CreateSymptomEvent(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "create_symptom_event", err)
	}
	input := symptomEventInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}
	if strings.TrimSpace(input.Name) == "" {
		return badRequest(c, "name required")
	}
	if input.Severity != nil && !isValidScore(*input.Severity) {
		return badRequest(c, "severity out of range")
	}

	record := models.SymptomEvent{
		PatientID:    patientID,
		DailyEntryID: entry.ID,
		Time:         input.Time,
		Name:         input.Name,
		Severity:     input.Severity,
		SavedItemID:  input.SavedItemID,
		Notes:        input.Notes,
	}
	if err := handler.repositories.Records.CreateSymptomEvent(&record); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "create_symptom_event", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpsertRegimenNote(c *fiber.Ctx) error {
	patientID, entry, err := handler.resolveDayEntry(c)
	if err != nil {
		return handler.dayEntryError(c, "upsert_regimen_note", err)
	}
	input := regimenNoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	record, found, err := handler.repositories.Records.FindRegimenNoteByEntry(entry.ID)
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_regimen_note", err)
	}
	record.Notes = input.Notes
	if found {
		err = handler.repositories.Records.SaveRegimenNote(&record)
	} else {
		record.PatientID = patientID
		record.DailyEntryID = entry.ID
		err = handler.repositories.Records.CreateRegimenNote(&record)
	}
	if err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "upsert_regimen_note", err)
	}
	return c.JSON(record)
}

func (handler *Handler) DeleteSleepBlock(c *fiber.Ctx) error {
	return handler.deleteDayRecord(c, "delete_sleep_block", handler.repositories.Records.DeleteSleepBlock)
}

func (handler *Handler) DeleteFoodEvent(c *fiber.Ctx) error {
	return handler.deleteDayRecord(c, "delete_food_event", handler.repositories.Records.DeleteFoodEvent)
}

func (handler *Handler) DeleteBowelMovement(c *fiber.Ctx) error {
	return handler.deleteDayRecord(c, "delete_bowel_movement", handler.repositories.Records.DeleteBowelMovement)
}

func (handler *Handler) DeleteExerciseEvent(c *fiber.Ctx) error {
	return handler.deleteDayRecord(c, "delete_exercise_event", handler.repositories.Records.DeleteExerciseEvent)
}

func (handler *Handler) DeleteVitalReading(c *fiber.Ctx) error {
	return handler.deleteDayRecord(c, "delete_vital_reading", handler.repositories.Records.DeleteVitalReading)
}

func (handler *Handler) DeleteMedicationEvent(c *fiber.Ctx) error {
	return handler.deleteDayRecord(c, "delete_medication_event", handler.repositories.Records.DeleteMedicationEvent)
}

func (handler *Handler) DeleteSymptomEvent(c *fiber.Ctx) error {
	return handler.deleteDayRecord(c, "delete_symptom_event", handler.repositories.Records.DeleteSymptomEvent)
}

func (handler *Handler) deleteDayRecord(c *fiber.Ctx, op string, deleteFn func(patientID uint, recordID uint) error) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := deleteFn(user.ID, recordID); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, op, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
