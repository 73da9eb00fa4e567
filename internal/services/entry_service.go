package services

import (
	"errors"
	"time"

	"github.com/wrenfield/carelog/internal/models"
)

var (
	ErrEntryLoadFailed    = errors.New("load daily entry failed")
	ErrEntryCreateFailed  = errors.New("create daily entry failed")
	ErrEntryUpdateFailed  = errors.New("update daily entry failed")
	ErrCycleLogLoadFailed = errors.New("load cycle log failed")
)

type EntryRepository interface {
	FindByPatientAndDayRange(patientID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error)
	Create(entry *models.DailyEntry) error
	UpdateFields(entryID uint, updates map[string]any) error
}

type EntryCycleRepository interface {
	FindLatestCycleLogByEntry(entryID uint) (models.CycleLog, bool, error)
	CreateCycleLog(cycleLog *models.CycleLog) error
}

// EntryService resolves the anchor rows all other daily data hangs off:
// the one-per-patient-per-date daily entry and the optional per-entry
// cycle log. Both are created lazily on first access.
type EntryService struct {
	entries EntryRepository
	cycles  EntryCycleRepository
}

func NewEntryService(entries EntryRepository, cycles EntryCycleRepository) *EntryService {
	return &EntryService{entries: entries, cycles: cycles}
}

// GetOrCreateEntry returns the daily entry for (patient, day), inserting a
// bare row when none exists. Two concurrent first reads of the same day
// can both miss the lookup and race on the insert; the unique
// (patient_id, date) index rejects the loser, so a failed insert is
// retried as a lookup before the create error is surfaced.
func (service *EntryService) GetOrCreateEntry(patientID uint, day time.Time, location *time.Location) (models.DailyEntry, error) {
	dayStart, dayEnd := DayRange(day, location)

	entry, found, err := service.entries.FindByPatientAndDayRange(patientID, dayStart, dayEnd)
	if err != nil {
		return models.DailyEntry{}, ErrEntryLoadFailed
	}
	if found {
		return entry, nil
	}

	entry = models.DailyEntry{PatientID: patientID, Date: dayStart}
	if createErr := service.entries.Create(&entry); createErr != nil {
		existing, found, err := service.entries.FindByPatientAndDayRange(patientID, dayStart, dayEnd)
		if err == nil && found {
			return existing, nil
		}
		return models.DailyEntry{}, ErrEntryCreateFailed
	}

	return entry, nil
}

// GetOrCreateCycleLog resolves the day's cycle log, creating an empty one
// when absent. If duplicates ever exist the most recently created row
// wins.
func (service *EntryService) GetOrCreateCycleLog(patientID uint, entryID uint) (models.CycleLog, error) {
	cycleLog, found, err := service.cycles.FindLatestCycleLogByEntry(entryID)
	if err != nil {
		return models.CycleLog{}, ErrCycleLogLoadFailed
	}
	if found {
		return cycleLog, nil
	}

	cycleLog = models.CycleLog{
		PatientID:            patientID,
		DailyEntryID:         entryID,
		PhysicalSymptomKeys:  []string{},
		EmotionalSymptomKeys: []string{},
	}
	if createErr := service.cycles.CreateCycleLog(&cycleLog); createErr != nil {
		existing, found, err := service.cycles.FindLatestCycleLogByEntry(entryID)
		if err == nil && found {
			return existing, nil
		}
		return models.CycleLog{}, ErrEntryCreateFailed
	}

	return cycleLog, nil
}

// EntryFieldUpdate carries the direct daily-entry field mutations. Nil
// pointers leave the stored value untouched; Clear* flags null a column.
type EntryFieldUpdate struct {
	EnergyPhysical  *int
	EnergyMental    *int
	EnergyEmotional *int
	EnergyDrive     *int
	Mood            *int
	Reflection      *string
	CycleDay        *int
	ClearCycleDay   bool
}

func (service *EntryService) UpdateEntryFields(patientID uint, day time.Time, payload EntryFieldUpdate, location *time.Location) (models.DailyEntry, error) {
	entry, err := service.GetOrCreateEntry(patientID, day, location)
	if err != nil {
		return models.DailyEntry{}, err
	}

	updates := map[string]any{}
	if payload.EnergyPhysical != nil {
		updates["energy_physical"] = *payload.EnergyPhysical
	}
	if payload.EnergyMental != nil {
		updates["energy_mental"] = *payload.EnergyMental
	}
	if payload.EnergyEmotional != nil {
		updates["energy_emotional"] = *payload.EnergyEmotional
	}
	if payload.EnergyDrive != nil {
		updates["energy_drive"] = *payload.EnergyDrive
	}
	if payload.Mood != nil {
		updates["mood"] = *payload.Mood
	}
	if payload.Reflection != nil {
		updates["reflection"] = *payload.Reflection
	}
	if payload.CycleDay != nil {
		updates["cycle_day"] = *payload.CycleDay
	} else if payload.ClearCycleDay {
		updates["cycle_day"] = nil
	}
	if len(updates) == 0 {
		return entry, nil
	}

	if err := service.entries.UpdateFields(entry.ID, updates); err != nil {
		return models.DailyEntry{}, ErrEntryUpdateFailed
	}

	dayStart, dayEnd := DayRange(day, location)
	updated, found, err := service.entries.FindByPatientAndDayRange(patientID, dayStart, dayEnd)
	if err != nil || !found {
		return models.DailyEntry{}, ErrEntryLoadFailed
	}
	return updated, nil
}
