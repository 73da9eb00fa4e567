package services

import (
	"errors"
	"testing"
	"time"

	"github.com/wrenfield/carelog/internal/models"
)

type stubEntryRepo struct {
	entries     []models.DailyEntry
	nextID      uint
	createErr   error
	findErr     error
	createCalls int
	updates     map[string]any
}

func (repo *stubEntryRepo) FindByPatientAndDayRange(patientID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error) {
	if repo.findErr != nil {
		return models.DailyEntry{}, false, repo.findErr
	}
	for _, entry := range repo.entries {
		if entry.PatientID != patientID {
			continue
		}
		if entry.Date.Before(dayStart) || !entry.Date.Before(dayEnd) {
			continue
		}
		return entry, true, nil
	}
	return models.DailyEntry{}, false, nil
}

func (repo *stubEntryRepo) Create(entry *models.DailyEntry) error {
	repo.createCalls++
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.nextID++
	entry.ID = repo.nextID
	repo.entries = append(repo.entries, *entry)
	return nil
}

func (repo *stubEntryRepo) UpdateFields(entryID uint, updates map[string]any) error {
	repo.updates = updates
	for index := range repo.entries {
		if repo.entries[index].ID != entryID {
			continue
		}
		if value, ok := updates["mood"]; ok {
			mood := value.(int)
			repo.entries[index].Mood = &mood
		}
		if value, ok := updates["cycle_day"]; ok {
			if value == nil {
				repo.entries[index].CycleDay = nil
			} else {
				cycleDay := value.(int)
				repo.entries[index].CycleDay = &cycleDay
			}
		}
	}
	return nil
}

type stubEntryCycleRepo struct {
	logs      []models.CycleLog
	nextID    uint
	createErr error
}

func (repo *stubEntryCycleRepo) FindLatestCycleLogByEntry(entryID uint) (models.CycleLog, bool, error) {
	var latest models.CycleLog
	found := false
	for _, log := range repo.logs {
		if log.DailyEntryID != entryID {
			continue
		}
		if !found || log.CreatedAt.After(latest.CreatedAt) || (log.CreatedAt.Equal(latest.CreatedAt) && log.ID > latest.ID) {
			latest = log
			found = true
		}
	}
	return latest, found, nil
}

func (repo *stubEntryCycleRepo) CreateCycleLog(cycleLog *models.CycleLog) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.nextID++
	cycleLog.ID = repo.nextID
	repo.logs = append(repo.logs, *cycleLog)
	return nil
}

func TestGetOrCreateEntryIsIdempotent(t *testing.T) {
	repo := &stubEntryRepo{}
	service := NewEntryService(repo, &stubEntryCycleRepo{})
	day := time.Date(2026, 5, 4, 15, 30, 0, 0, time.UTC)

	first, err := service.GetOrCreateEntry(12, day, time.UTC)
	if err != nil {
		t.Fatalf("first GetOrCreateEntry: %v", err)
	}
	second, err := service.GetOrCreateEntry(12, day, time.UTC)
	if err != nil {
		t.Fatalf("second GetOrCreateEntry: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same entry, got %d and %d", first.ID, second.ID)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected single create, got %d", repo.createCalls)
	}
	if first.Date.Hour() != 0 {
		t.Fatalf("expected date normalized to midnight, got %d", first.Date.Hour())
	}
}

func TestGetOrCreateEntryRecoversFromInsertRace(t *testing.T) {
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	repo := &stubEntryRepo{createErr: errors.New("unique constraint failed")}
	service := NewEntryService(repo, &stubEntryCycleRepo{})

	// The losing writer's create fails, but by then the winner's row
	// exists and the re-fetch must return it.
	resolved, err := service.GetOrCreateEntry(12, day, time.UTC)
	if !errors.Is(err, ErrEntryCreateFailed) {
		t.Fatalf("expected ErrEntryCreateFailed with no existing row, got %v", err)
	}

	repo.entries = append(repo.entries, models.DailyEntry{ID: 77, PatientID: 12, Date: day})
	resolved, err = service.GetOrCreateEntry(12, day, time.UTC)
	if err != nil {
		t.Fatalf("expected race fallback to succeed, got %v", err)
	}
	if resolved.ID != 77 {
		t.Fatalf("expected existing entry 77, got %d", resolved.ID)
	}
}

func TestGetOrCreateCycleLogPrefersNewestDuplicate(t *testing.T) {
	cycles := &stubEntryCycleRepo{
		logs: []models.CycleLog{
			{ID: 1, DailyEntryID: 5, CreatedAt: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)},
			{ID: 2, DailyEntryID: 5, CreatedAt: time.Date(2026, 5, 1, 11, 0, 0, 0, time.UTC)},
		},
		nextID: 2,
	}
	service := NewEntryService(&stubEntryRepo{}, cycles)

	log, err := service.GetOrCreateCycleLog(12, 5)
	if err != nil {
		t.Fatalf("GetOrCreateCycleLog: %v", err)
	}
	if log.ID != 2 {
		t.Fatalf("expected newest duplicate 2, got %d", log.ID)
	}
}

func TestGetOrCreateCycleLogCreatesEmptyLog(t *testing.T) {
	cycles := &stubEntryCycleRepo{}
	service := NewEntryService(&stubEntryRepo{}, cycles)

	log, err := service.GetOrCreateCycleLog(12, 5)
	if err != nil {
		t.Fatalf("GetOrCreateCycleLog: %v", err)
	}
	if log.PatientID != 12 || log.DailyEntryID != 5 {
		t.Fatalf("unexpected log ownership: %+v", log)
	}
	if log.PhysicalSymptomKeys == nil || log.EmotionalSymptomKeys == nil {
		t.Fatalf("expected empty symptom key slices, got nils")
	}
	if log.CycleDay != nil {
		t.Fatalf("expected nil cycle day on fresh log")
	}
}

func TestUpdateEntryFieldsAppliesOnlyProvidedFields(t *testing.T) {
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	cycleDay := 3
	repo := &stubEntryRepo{entries: []models.DailyEntry{{ID: 1, PatientID: 12, Date: day, CycleDay: &cycleDay}}, nextID: 1}
	service := NewEntryService(repo, &stubEntryCycleRepo{})

	mood := 7
	updated, err := service.UpdateEntryFields(12, day, EntryFieldUpdate{Mood: &mood}, time.UTC)
	if err != nil {
		t.Fatalf("UpdateEntryFields: %v", err)
	}
	if updated.Mood == nil || *updated.Mood != 7 {
		t.Fatalf("expected mood 7, got %+v", updated.Mood)
	}
	if updated.CycleDay == nil || *updated.CycleDay != 3 {
		t.Fatalf("expected cycle day untouched, got %+v", updated.CycleDay)
	}
	if _, present := repo.updates["cycle_day"]; present {
		t.Fatalf("cycle_day should not be in the update set")
	}
}

func TestUpdateEntryFieldsClearsCycleDay(t *testing.T) {
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	cycleDay := 3
	repo := &stubEntryRepo{entries: []models.DailyEntry{{ID: 1, PatientID: 12, Date: day, CycleDay: &cycleDay}}, nextID: 1}
	service := NewEntryService(repo, &stubEntryCycleRepo{})

	updated, err := service.UpdateEntryFields(12, day, EntryFieldUpdate{ClearCycleDay: true}, time.UTC)
	if err != nil {
		t.Fatalf("UpdateEntryFields: %v", err)
	}
	if updated.CycleDay != nil {
		t.Fatalf("expected cycle day cleared, got %d", *updated.CycleDay)
	}
}

func TestUpdateEntryFieldsNoChangesSkipsWrite(t *testing.T) {
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	repo := &stubEntryRepo{entries: []models.DailyEntry{{ID: 1, PatientID: 12, Date: day}}, nextID: 1}
	service := NewEntryService(repo, &stubEntryCycleRepo{})

	if _, err := service.UpdateEntryFields(12, day, EntryFieldUpdate{}, time.UTC); err != nil {
		t.Fatalf("UpdateEntryFields: %v", err)
	}
	if repo.updates != nil {
		t.Fatalf("expected no update call, got %v", repo.updates)
	}
}
