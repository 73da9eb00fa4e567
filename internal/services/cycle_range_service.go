package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wrenfield/carelog/internal/models"
	"golang.org/x/sync/errgroup"
)

// CycleDaySummary projects one day of the range onto its cycle fields.
// CycleDay prefers the cycle log's value and falls back to the anchor
// entry's; both may legitimately be nil, and 0 is a real value.
type CycleDaySummary struct {
	EntryID              uint      `json:"entry_id"`
	Date                 time.Time `json:"date"`
	CycleDay             *int      `json:"cycle_day"`
	HasCycleLog          bool      `json:"has_cycle_log"`
	BleedingQuantity     string    `json:"bleeding_quantity"`
	BleedingColor        string    `json:"bleeding_color"`
	BleedingVolume       string    `json:"bleeding_volume"`
	HasClots             bool      `json:"has_clots"`
	HasMucus             bool      `json:"has_mucus"`
	PhysicalSymptomKeys  []string  `json:"physical_symptom_keys"`
	EmotionalSymptomKeys []string  `json:"emotional_symptom_keys"`
	IntakePercent        int       `json:"intake_percent"`
	CompletionPercent    int       `json:"completion_percent"`
}

type CycleRangeCycleRepository interface {
	ListCycleLogsByEntryIDs(entryIDs []uint) ([]models.CycleLog, error)
}

type CycleRangeService struct {
	entries SummaryEntryRepository
	cycles  CycleRangeCycleRepository
	regimen SummaryRegimenRepository
}

func NewCycleRangeService(
	entries SummaryEntryRepository,
	cycles CycleRangeCycleRepository,
	regimen SummaryRegimenRepository,
) *CycleRangeService {
	return &CycleRangeService{entries: entries, cycles: cycles, regimen: regimen}
}

// CycleRange lists the cycle projection for every recorded day in
// [from, to], newest first. Cycle logs arrive newest first, so the first
// log seen per entry wins when duplicates exist.
func (service *CycleRangeService) CycleRange(ctx context.Context, patientID uint, from, to time.Time, location *time.Location) ([]CycleDaySummary, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)

	entries, err := service.entries.ListByPatientRange(patientID, fromStart, toEnd)
	if err != nil {
		return nil, fmt.Errorf("load daily entries: %w", err)
	}
	if len(entries) == 0 {
		return []CycleDaySummary{}, nil
	}

	entryIDs := make([]uint, 0, len(entries))
	for _, entry := range entries {
		entryIDs = append(entryIDs, entry.ID)
	}

	var (
		cycleLogs    []models.CycleLog
		formulations []models.Formulation
		treatments   []models.Treatment
		intakes      []models.FormulationIntake
		completions  []models.TreatmentCompletion
	)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if cycleLogs, err = service.cycles.ListCycleLogsByEntryIDs(entryIDs); err != nil {
			return fmt.Errorf("load cycle logs: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if formulations, err = service.regimen.ListFormulationsByPatient(patientID); err != nil {
			return fmt.Errorf("load formulations: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if treatments, err = service.regimen.ListTreatmentsByPatient(patientID); err != nil {
			return fmt.Errorf("load treatments: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if intakes, err = service.regimen.ListIntakesByEntryIDs(entryIDs); err != nil {
			return fmt.Errorf("load formulation intakes: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if completions, err = service.regimen.ListCompletionsByEntryIDs(entryIDs); err != nil {
			return fmt.Errorf("load treatment completions: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logsByEntry := make(map[uint]models.CycleLog, len(cycleLogs))
	for _, log := range cycleLogs {
		if _, seen := logsByEntry[log.DailyEntryID]; !seen {
			logsByEntry[log.DailyEntryID] = log
		}
	}

	intakesByEntry := make(map[uint][]AdherenceRow)
	for _, intake := range intakes {
		intakesByEntry[intake.DailyEntryID] = append(intakesByEntry[intake.DailyEntryID], AdherenceRow{ItemID: intake.FormulationID, Status: intake.Status})
	}
	completionsByEntry := make(map[uint][]AdherenceRow)
	for _, completion := range completions {
		completionsByEntry[completion.DailyEntryID] = append(completionsByEntry[completion.DailyEntryID], AdherenceRow{ItemID: completion.TreatmentID, Status: completion.Status})
	}

	formulationWindows := FormulationWindows(formulations)
	treatmentWindows := TreatmentWindows(treatments)

	summaries := make([]CycleDaySummary, 0, len(entries))
	for _, entry := range entries {
		summary := CycleDaySummary{
			EntryID:              entry.ID,
			Date:                 entry.Date,
			CycleDay:             entry.CycleDay,
			PhysicalSymptomKeys:  []string{},
			EmotionalSymptomKeys: []string{},
			IntakePercent:        AdherencePercent(ActiveRegimenIDs(formulationWindows, entry.Date), intakesByEntry[entry.ID], intakeCountedStatuses),
			CompletionPercent:    AdherencePercent(ActiveRegimenIDs(treatmentWindows, entry.Date), completionsByEntry[entry.ID], completionCountedStatuses),
		}
		if log, found := logsByEntry[entry.ID]; found {
			summary.HasCycleLog = true
			summary.BleedingQuantity = log.BleedingQuantity
			summary.BleedingColor = log.BleedingColor
			summary.BleedingVolume = log.BleedingVolume
			summary.HasClots = log.HasClots
			summary.HasMucus = log.HasMucus
			if log.PhysicalSymptomKeys != nil {
				summary.PhysicalSymptomKeys = log.PhysicalSymptomKeys
			}
			if log.EmotionalSymptomKeys != nil {
				summary.EmotionalSymptomKeys = log.EmotionalSymptomKeys
			}
			if log.CycleDay != nil {
				summary.CycleDay = log.CycleDay
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
