package services

import (
	"math"
	"time"

	"github.com/wrenfield/carelog/internal/models"
)

// RegimenWindow is the validity interval of one regimen item. An item is
// active on day D iff StartDate <= D and (StopDate is nil or StopDate >= D).
type RegimenWindow struct {
	ItemID    uint
	StartDate time.Time
	StopDate  *time.Time
}

// AdherenceRow is one recorded status for (regimen item, day).
type AdherenceRow struct {
	ItemID uint
	Status string
}

// Statuses that count toward adherence. Skipped never counts; partial
// counts the same as fully taken/completed.
var (
	intakeCountedStatuses = map[string]struct{}{
		models.IntakeTaken:   {},
		models.IntakePartial: {},
	}
	completionCountedStatuses = map[string]struct{}{
		models.CompletionCompleted: {},
		models.CompletionPartial:   {},
	}
)

func FormulationWindows(items []models.Formulation) []RegimenWindow {
	windows := make([]RegimenWindow, 0, len(items))
	for _, item := range items {
		windows = append(windows, RegimenWindow{ItemID: item.ID, StartDate: item.StartDate, StopDate: item.StopDate})
	}
	return windows
}

func TreatmentWindows(items []models.Treatment) []RegimenWindow {
	windows := make([]RegimenWindow, 0, len(items))
	for _, item := range items {
		windows = append(windows, RegimenWindow{ItemID: item.ID, StartDate: item.StartDate, StopDate: item.StopDate})
	}
	return windows
}

func IntakeRows(rows []models.FormulationIntake) []AdherenceRow {
	converted := make([]AdherenceRow, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, AdherenceRow{ItemID: row.FormulationID, Status: row.Status})
	}
	return converted
}

func CompletionRows(rows []models.TreatmentCompletion) []AdherenceRow {
	converted := make([]AdherenceRow, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, AdherenceRow{ItemID: row.TreatmentID, Status: row.Status})
	}
	return converted
}

func RegimenActiveOn(window RegimenWindow, day time.Time) bool {
	if day.Before(window.StartDate) {
		return false
	}
	if window.StopDate != nil && day.After(*window.StopDate) {
		return false
	}
	return true
}

// ActiveRegimenIDs returns the ids of the items active on the given day.
func ActiveRegimenIDs(windows []RegimenWindow, day time.Time) map[uint]struct{} {
	active := make(map[uint]struct{})
	for _, window := range windows {
		if RegimenActiveOn(window, day) {
			active[window.ItemID] = struct{}{}
		}
	}
	return active
}

// AdherencePercent computes round(100 * counted / active), rounding halves
// away from zero. A day with no active items reports 0, never a division
// error and never 100. Rows for inactive items or non-counted statuses are
// ignored.
func AdherencePercent(activeIDs map[uint]struct{}, rows []AdherenceRow, countedStatuses map[string]struct{}) int {
	if len(activeIDs) == 0 {
		return 0
	}

	counted := 0
	for _, row := range rows {
		if _, active := activeIDs[row.ItemID]; !active {
			continue
		}
		if _, counts := countedStatuses[row.Status]; !counts {
			continue
		}
		counted++
	}

	return int(math.Round(float64(counted) / float64(len(activeIDs)) * 100))
}
