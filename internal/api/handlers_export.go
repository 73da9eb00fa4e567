package api

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wrenfield/carelog/internal/services"
)

const exportDefaultWindowDays = 90

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	entries, ok, err := handler.loadExportEntries(c)
	if !ok {
		return err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "export_csv", err)
	}
	for _, row := range services.BuildCSVRows(entries) {
		if err := writer.Write(row); err != nil {
			return handler.apiError(c, fiber.StatusInternalServerError, "export_csv", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return handler.apiError(c, fiber.StatusInternalServerError, "export_csv", err)
	}

	filename := "carelog-export-" + time.Now().In(handler.location).Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Type("csv", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	entries, ok, err := handler.loadExportEntries(c)
	if !ok {
		return err
	}
	return c.JSON(fiber.Map{"entries": entries})
}

// loadExportEntries resolves the range and builds the export rows. When
// ok is false the response has already been written and the returned
// error is the handler result.
func (handler *Handler) loadExportEntries(c *fiber.Ctx) ([]services.ExportEntry, bool, error) {
	patientID, ok := currentPatientID(c)
	if !ok {
		return nil, false, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	from, to, err := handler.parseRangeQuery(c, exportDefaultWindowDays)
	if err != nil {
		return nil, false, badRequest(c, "invalid range")
	}

	entries, err := handler.exportService.BuildEntries(c.Context(), patientID, from, to, handler.location)
	if err != nil {
		return nil, false, handler.apiError(c, fiber.StatusInternalServerError, "export", err)
	}
	return entries, true, nil
}
