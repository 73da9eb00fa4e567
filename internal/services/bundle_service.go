package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wrenfield/carelog/internal/models"
	"golang.org/x/sync/errgroup"
)

// DailyEntryBundle is the full in-memory aggregate for one patient-day.
// List fields are never nil; singular optional records are nil pointers
// when absent. Regimen catalogs carry every definition the patient has,
// not just those active on the date; callers match them to the day's
// adherence rows by foreign key.
type DailyEntryBundle struct {
	Entry                models.DailyEntry            `json:"entry"`
	SleepBlocks          []models.SleepBlock          `json:"sleep_blocks"`
	Morning              *models.MorningEntry         `json:"morning"`
	FoodEvents           []models.FoodEvent           `json:"food_events"`
	Fluids               *models.FluidTotals          `json:"fluids"`
	BowelMovements       []models.BowelMovement       `json:"bowel_movements"`
	ExerciseEvents       []models.ExerciseEvent       `json:"exercise_events"`
	VitalReadings        []models.VitalReading        `json:"vital_readings"`
	MedicationEvents     []models.MedicationEvent     `json:"medication_events"`
	SymptomEvents        []models.SymptomEvent        `json:"symptom_events"`
	RegimenNote          *models.RegimenNote          `json:"regimen_note"`
	CycleLog             *models.CycleLog             `json:"cycle_log"`
	CycleComments        []models.CycleComment        `json:"cycle_comments"`
	Formulations         []models.Formulation         `json:"formulations"`
	Treatments           []models.Treatment           `json:"treatments"`
	FormulationIntakes   []models.FormulationIntake   `json:"formulation_intakes"`
	TreatmentCompletions []models.TreatmentCompletion `json:"treatment_completions"`
	SavedItems           []models.SavedItem           `json:"saved_items"`
}

type BundleEntryResolver interface {
	GetOrCreateEntry(patientID uint, day time.Time, location *time.Location) (models.DailyEntry, error)
}

type BundleRecordRepository interface {
	ListSleepBlocksByEntry(entryID uint) ([]models.SleepBlock, error)
	FindMorningEntryByEntry(entryID uint) (models.MorningEntry, bool, error)
	ListFoodEventsByEntry(entryID uint) ([]models.FoodEvent, error)
	FindFluidTotalsByEntry(entryID uint) (models.FluidTotals, bool, error)
	ListBowelMovementsByEntry(entryID uint) ([]models.BowelMovement, error)
	ListExerciseEventsByEntry(entryID uint) ([]models.ExerciseEvent, error)
	ListVitalReadingsByEntry(entryID uint) ([]models.VitalReading, error)
	ListMedicationEventsByEntry(entryID uint) ([]models.MedicationEvent, error)
	ListSymptomEventsByEntry(entryID uint) ([]models.SymptomEvent, error)
	FindRegimenNoteByEntry(entryID uint) (models.RegimenNote, bool, error)
}

type BundleCycleRepository interface {
	FindLatestCycleLogByEntry(entryID uint) (models.CycleLog, bool, error)
	ListCommentsByCycleLog(cycleLogID uint) ([]models.CycleComment, error)
}

type BundleRegimenRepository interface {
	ListFormulationsByPatient(patientID uint) ([]models.Formulation, error)
	ListTreatmentsByPatient(patientID uint) ([]models.Treatment, error)
	ListIntakesByEntry(entryID uint) ([]models.FormulationIntake, error)
	ListCompletionsByEntry(entryID uint) ([]models.TreatmentCompletion, error)
}

type BundleSavedItemRepository interface {
	ListByPatient(patientID uint, kind string) ([]models.SavedItem, error)
}

type BundleService struct {
	resolver   BundleEntryResolver
	records    BundleRecordRepository
	cycles     BundleCycleRepository
	regimen    BundleRegimenRepository
	savedItems BundleSavedItemRepository
}

func NewBundleService(
	resolver BundleEntryResolver,
	records BundleRecordRepository,
	cycles BundleCycleRepository,
	regimen BundleRegimenRepository,
	savedItems BundleSavedItemRepository,
) *BundleService {
	return &BundleService{
		resolver:   resolver,
		records:    records,
		cycles:     cycles,
		regimen:    regimen,
		savedItems: savedItems,
	}
}

// Bundle resolves the anchor entry and then loads every sub-record for the
// day concurrently. Each task owns one bundle field, so the tasks share no
// state; cycle comments depend on the cycle log's id and are fetched after
// it inside the same task. Any failed sub-fetch aborts the whole bundle
// with an error naming the section; partial bundles are never returned.
func (service *BundleService) Bundle(ctx context.Context, patientID uint, day time.Time, location *time.Location) (DailyEntryBundle, error) {
	entry, err := service.resolver.GetOrCreateEntry(patientID, day, location)
	if err != nil {
		return DailyEntryBundle{}, fmt.Errorf("resolve daily entry: %w", err)
	}

	bundle := DailyEntryBundle{Entry: entry}
	group, _ := errgroup.WithContext(ctx)

	group.Go(func() error {
		records, err := service.records.ListSleepBlocksByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load sleep blocks: %w", err)
		}
		bundle.SleepBlocks = records
		return nil
	})
	group.Go(func() error {
		record, found, err := service.records.FindMorningEntryByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load morning entry: %w", err)
		}
		if found {
			bundle.Morning = &record
		}
		return nil
	})
	group.Go(func() error {
		records, err := service.records.ListFoodEventsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load food events: %w", err)
		}
		bundle.FoodEvents = records
		return nil
	})
	group.Go(func() error {
		record, found, err := service.records.FindFluidTotalsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load fluid totals: %w", err)
		}
		if found {
			bundle.Fluids = &record
		}
		return nil
	})
	group.Go(func() error {
		records, err := service.records.ListBowelMovementsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load bowel movements: %w", err)
		}
		bundle.BowelMovements = records
		return nil
	})
	group.Go(func() error {
		records, err := service.records.ListExerciseEventsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load exercise events: %w", err)
		}
		bundle.ExerciseEvents = records
		return nil
	})
	group.Go(func() error {
		records, err := service.records.ListVitalReadingsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load vital readings: %w", err)
		}
		bundle.VitalReadings = records
		return nil
	})
	group.Go(func() error {
		records, err := service.records.ListMedicationEventsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load medication events: %w", err)
		}
		bundle.MedicationEvents = records
		return nil
	})
	group.Go(func() error {
		records, err := service.records.ListSymptomEventsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load symptom events: %w", err)
		}
		bundle.SymptomEvents = records
		return nil
	})
	group.Go(func() error {
		record, found, err := service.records.FindRegimenNoteByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load regimen note: %w", err)
		}
		if found {
			bundle.RegimenNote = &record
		}
		return nil
	})
	group.Go(func() error {
		bundle.CycleComments = []models.CycleComment{}
		cycleLog, found, err := service.cycles.FindLatestCycleLogByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load cycle log: %w", err)
		}
		if !found {
			return nil
		}
		bundle.CycleLog = &cycleLog
		comments, err := service.cycles.ListCommentsByCycleLog(cycleLog.ID)
		if err != nil {
			return fmt.Errorf("load cycle comments: %w", err)
		}
		bundle.CycleComments = comments
		return nil
	})
	group.Go(func() error {
		items, err := service.regimen.ListFormulationsByPatient(patientID)
		if err != nil {
			return fmt.Errorf("load formulations: %w", err)
		}
		bundle.Formulations = items
		return nil
	})
	group.Go(func() error {
		items, err := service.regimen.ListTreatmentsByPatient(patientID)
		if err != nil {
			return fmt.Errorf("load treatments: %w", err)
		}
		bundle.Treatments = items
		return nil
	})
	group.Go(func() error {
		rows, err := service.regimen.ListIntakesByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load formulation intakes: %w", err)
		}
		bundle.FormulationIntakes = rows
		return nil
	})
	group.Go(func() error {
		rows, err := service.regimen.ListCompletionsByEntry(entry.ID)
		if err != nil {
			return fmt.Errorf("load treatment completions: %w", err)
		}
		bundle.TreatmentCompletions = rows
		return nil
	})
	group.Go(func() error {
		items, err := service.savedItems.ListByPatient(patientID, "")
		if err != nil {
			return fmt.Errorf("load saved items: %w", err)
		}
		bundle.SavedItems = items
		return nil
	})

	if err := group.Wait(); err != nil {
		return DailyEntryBundle{}, err
	}

	return bundle, nil
}
