package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wrenfield/carelog/internal/models"
	"golang.org/x/sync/errgroup"
)

// DailySummary is one row of the range overview: headline entry fields
// plus derived counts and adherence percentages for a single day.
type DailySummary struct {
	EntryID           uint      `json:"entry_id"`
	Date              time.Time `json:"date"`
	Mood              *int      `json:"mood"`
	EnergyPhysical    *int      `json:"energy_physical"`
	EnergyMental      *int      `json:"energy_mental"`
	EnergyEmotional   *int      `json:"energy_emotional"`
	EnergyDrive       *int      `json:"energy_drive"`
	CycleDay          *int      `json:"cycle_day"`
	HasCycleLog       bool      `json:"has_cycle_log"`
	FoodCount         int       `json:"food_count"`
	BowelCount        int       `json:"bowel_count"`
	ExerciseMinutes   int       `json:"exercise_minutes"`
	IntakePercent     int       `json:"intake_percent"`
	CompletionPercent int       `json:"completion_percent"`
}

type SummaryEntryRepository interface {
	ListByPatientRange(patientID uint, fromStart, toEnd time.Time) ([]models.DailyEntry, error)
}

type SummaryRecordRepository interface {
	ListFoodEventsByEntryIDs(entryIDs []uint) ([]models.FoodEvent, error)
	ListBowelMovementsByEntryIDs(entryIDs []uint) ([]models.BowelMovement, error)
	ListExerciseDurationsByEntryIDs(entryIDs []uint) ([]models.ExerciseEvent, error)
}

type SummaryCycleRepository interface {
	ListEntryIDsWithCycleLog(entryIDs []uint) ([]uint, error)
}

type SummaryRegimenRepository interface {
	ListFormulationsByPatient(patientID uint) ([]models.Formulation, error)
	ListTreatmentsByPatient(patientID uint) ([]models.Treatment, error)
	ListIntakesByEntryIDs(entryIDs []uint) ([]models.FormulationIntake, error)
	ListCompletionsByEntryIDs(entryIDs []uint) ([]models.TreatmentCompletion, error)
}

type SummaryService struct {
	entries SummaryEntryRepository
	records SummaryRecordRepository
	cycles  SummaryCycleRepository
	regimen SummaryRegimenRepository
}

func NewSummaryService(
	entries SummaryEntryRepository,
	records SummaryRecordRepository,
	cycles SummaryCycleRepository,
	regimen SummaryRegimenRepository,
) *SummaryService {
	return &SummaryService{entries: entries, records: records, cycles: cycles, regimen: regimen}
}

// DailyRange summarizes every recorded day in [from, to], newest first.
// Days without an anchor entry are absent from the result. An empty
// range short-circuits before any sub-record fetch runs.
func (service *SummaryService) DailyRange(ctx context.Context, patientID uint, from, to time.Time, location *time.Location) ([]DailySummary, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)

	entries, err := service.entries.ListByPatientRange(patientID, fromStart, toEnd)
	if err != nil {
		return nil, fmt.Errorf("load daily entries: %w", err)
	}
	if len(entries) == 0 {
		return []DailySummary{}, nil
	}

	entryIDs := make([]uint, 0, len(entries))
	for _, entry := range entries {
		entryIDs = append(entryIDs, entry.ID)
	}

	var (
		foodEvents    []models.FoodEvent
		bowels        []models.BowelMovement
		exercises     []models.ExerciseEvent
		cycleEntryIDs []uint
		formulations  []models.Formulation
		treatments    []models.Treatment
		intakes       []models.FormulationIntake
		completions   []models.TreatmentCompletion
	)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if foodEvents, err = service.records.ListFoodEventsByEntryIDs(entryIDs); err != nil {
			return fmt.Errorf("load food events: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if bowels, err = service.records.ListBowelMovementsByEntryIDs(entryIDs); err != nil {
			return fmt.Errorf("load bowel movements: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if exercises, err = service.records.ListExerciseDurationsByEntryIDs(entryIDs); err != nil {
			return fmt.Errorf("load exercise events: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if cycleEntryIDs, err = service.cycles.ListEntryIDsWithCycleLog(entryIDs); err != nil {
			return fmt.Errorf("load cycle log markers: %w", err)
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

	foodCounts := make(map[uint]int)
	for _, event := range foodEvents {
		foodCounts[event.DailyEntryID]++
	}
	bowelCounts := make(map[uint]int)
	for _, movement := range bowels {
		bowelCounts[movement.DailyEntryID]++
	}
	exerciseMinutes := make(map[uint]int)
	for _, event := range exercises {
		if event.DurationMinutes != nil {
			exerciseMinutes[event.DailyEntryID] += *event.DurationMinutes
		}
	}
	hasCycleLog := make(map[uint]bool)
	for _, entryID := range cycleEntryIDs {
		hasCycleLog[entryID] = true
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

	summaries := make([]DailySummary, 0, len(entries))
	for _, entry := range entries {
		activeFormulations := ActiveRegimenIDs(formulationWindows, entry.Date)
		activeTreatments := ActiveRegimenIDs(treatmentWindows, entry.Date)
		summaries = append(summaries, DailySummary{
			EntryID:           entry.ID,
			Date:              entry.Date,
			Mood:              entry.Mood,
			EnergyPhysical:    entry.EnergyPhysical,
			EnergyMental:      entry.EnergyMental,
			EnergyEmotional:   entry.EnergyEmotional,
			EnergyDrive:       entry.EnergyDrive,
			CycleDay:          entry.CycleDay,
			HasCycleLog:       hasCycleLog[entry.ID],
			FoodCount:         foodCounts[entry.ID],
			BowelCount:        bowelCounts[entry.ID],
			ExerciseMinutes:   exerciseMinutes[entry.ID],
			IntakePercent:     AdherencePercent(activeFormulations, intakesByEntry[entry.ID], intakeCountedStatuses),
			CompletionPercent: AdherencePercent(activeTreatments, completionsByEntry[entry.ID], completionCountedStatuses),
		})
	}
	return summaries, nil
}
