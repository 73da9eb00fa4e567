package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	days := api.Group("/days", handler.AuthRequired, handler.PatientScope)
	days.Get("/:date", handler.GetDayBundle)
	days.Patch("/:date/entry", handler.PatientOnly, handler.UpdateDayEntry)
	days.Post("/:date/sleep", handler.PatientOnly, handler.CreateSleepBlock)
	days.Put("/:date/morning", handler.PatientOnly, handler.UpsertMorningEntry)
	days.Post("/:date/food", handler.PatientOnly, handler.CreateFoodEvent)
	days.Put("/:date/fluids", handler.PatientOnly, handler.UpsertFluidTotals)
	days.Post("/:date/bowel", handler.PatientOnly, handler.CreateBowelMovement)
	days.Post("/:date/exercise", handler.PatientOnly, handler.CreateExerciseEvent)
	days.Post("/:date/vitals", handler.PatientOnly, handler.CreateVitalReading)
	days.Post("/:date/medications", handler.PatientOnly, handler.CreateMedicationEvent)
	days.Post("/:date/symptoms", handler.PatientOnly, handler.CreateSymptomEvent)
	days.Put("/:date/regimen-note", handler.PatientOnly, handler.UpsertRegimenNote)
	days.Put("/:date/cycle", handler.PatientOnly, handler.UpsertCycleLog)
	days.Post("/:date/cycle/comments", handler.AddCycleComment)
	days.Put("/:date/intakes/:id", handler.PatientOnly, handler.UpsertFormulationIntake)
	days.Put("/:date/completions/:id", handler.PatientOnly, handler.UpsertTreatmentCompletion)

	records := api.Group("/records", handler.AuthRequired, handler.PatientOnly)
	records.Delete("/sleep/:id", handler.DeleteSleepBlock)
	records.Delete("/food/:id", handler.DeleteFoodEvent)
	records.Delete("/bowel/:id", handler.DeleteBowelMovement)
	records.Delete("/exercise/:id", handler.DeleteExerciseEvent)
	records.Delete("/vitals/:id", handler.DeleteVitalReading)
	records.Delete("/medications/:id", handler.DeleteMedicationEvent)
	records.Delete("/symptoms/:id", handler.DeleteSymptomEvent)

	regimen := api.Group("/regimen", handler.AuthRequired)
	regimen.Get("/formulations", handler.PatientScope, handler.ListFormulations)
	regimen.Post("/formulations", handler.PatientOnly, handler.CreateFormulation)
	regimen.Patch("/formulations/:id", handler.PatientOnly, handler.UpdateFormulation)
	regimen.Get("/treatments", handler.PatientScope, handler.ListTreatments)
	regimen.Post("/treatments", handler.PatientOnly, handler.CreateTreatment)
	regimen.Patch("/treatments/:id", handler.PatientOnly, handler.UpdateTreatment)

	summary := api.Group("/summary", handler.AuthRequired, handler.PatientScope)
	summary.Get("/daily", handler.GetDailySummary)
	summary.Get("/cycle", handler.GetCycleSummary)

	savedItems := api.Group("/saved-items", handler.AuthRequired)
	savedItems.Get("", handler.PatientScope, handler.ListSavedItems)
	savedItems.Post("", handler.PatientOnly, handler.CreateSavedItem)
	savedItems.Delete("/:id", handler.PatientOnly, handler.DeleteSavedItem)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/config", handler.PatientScope, handler.GetConfig)
	settings.Patch("/config", handler.PatientOnly, handler.UpdateConfig)
	settings.Get("/share-token", handler.PatientOnly, handler.GetShareToken)
	settings.Post("/share-token/rotate", handler.PatientOnly, handler.RotateShareToken)

	links := api.Group("/links", handler.AuthRequired)
	links.Post("/redeem", handler.RedeemShareToken)
	links.Get("/patients", handler.ListLinkedPatients)

	export := api.Group("/export", handler.AuthRequired, handler.PatientScope)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}
