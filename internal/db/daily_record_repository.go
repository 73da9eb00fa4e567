package db

import (
	"github.com/wrenfield/carelog/internal/models"
	"gorm.io/gorm"
)

// DailyRecordRepository covers every satellite table hanging off a daily
// entry except cycle data and regimen adherence, which have their own
// repositories.
type DailyRecordRepository struct {
	database *gorm.DB
}

func NewDailyRecordRepository(database *gorm.DB) *DailyRecordRepository {
	return &DailyRecordRepository{database: database}
}

// Sleep blocks.

func (repo *DailyRecordRepository) ListSleepBlocksByEntry(entryID uint) ([]models.SleepBlock, error) {
	records := make([]models.SleepBlock, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) CreateSleepBlock(record *models.SleepBlock) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) DeleteSleepBlock(patientID uint, recordID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", recordID, patientID).Delete(&models.SleepBlock{}).Error
}

// Morning entries (at most one per day).

func (repo *DailyRecordRepository) FindMorningEntryByEntry(entryID uint) (models.MorningEntry, bool, error) {
	var record models.MorningEntry
	result := repo.database.Where("daily_entry_id = ?", entryID).Limit(1).Find(&record)
	if result.Error != nil {
		return models.MorningEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MorningEntry{}, false, nil
	}
	return record, true, nil
}

func (repo *DailyRecordRepository) CreateMorningEntry(record *models.MorningEntry) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) SaveMorningEntry(record *models.MorningEntry) error {
	return repo.database.Save(record).Error
}

// Food events.

func (repo *DailyRecordRepository) ListFoodEventsByEntry(entryID uint) ([]models.FoodEvent, error) {
	records := make([]models.FoodEvent, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("time ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) ListFoodEventsByEntryIDs(entryIDs []uint) ([]models.FoodEvent, error) {
	records := make([]models.FoodEvent, 0)
	if err := repo.database.Where("daily_entry_id IN ?", entryIDs).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) CreateFoodEvent(record *models.FoodEvent) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) DeleteFoodEvent(patientID uint, recordID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", recordID, patientID).Delete(&models.FoodEvent{}).Error
}

// Fluid totals (at most one per day).

func (repo *DailyRecordRepository) FindFluidTotalsByEntry(entryID uint) (models.FluidTotals, bool, error) {
	var record models.FluidTotals
	result := repo.database.Where("daily_entry_id = ?", entryID).Limit(1).Find(&record)
	if result.Error != nil {
		return models.FluidTotals{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FluidTotals{}, false, nil
	}
	return record, true, nil
}

func (repo *DailyRecordRepository) CreateFluidTotals(record *models.FluidTotals) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) SaveFluidTotals(record *models.FluidTotals) error {
	return repo.database.Save(record).Error
}

// Bowel movements.

func (repo *DailyRecordRepository) ListBowelMovementsByEntry(entryID uint) ([]models.BowelMovement, error) {
	records := make([]models.BowelMovement, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("time ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) ListBowelMovementsByEntryIDs(entryIDs []uint) ([]models.BowelMovement, error) {
	records := make([]models.BowelMovement, 0)
	if err := repo.database.Where("daily_entry_id IN ?", entryIDs).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) CreateBowelMovement(record *models.BowelMovement) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) DeleteBowelMovement(patientID uint, recordID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", recordID, patientID).Delete(&models.BowelMovement{}).Error
}

// Exercise events.

func (repo *DailyRecordRepository) ListExerciseEventsByEntry(entryID uint) ([]models.ExerciseEvent, error) {
	records := make([]models.ExerciseEvent, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("time ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListExerciseDurationsByEntryIDs loads only what the range summarizer
// needs per event.
func (repo *DailyRecordRepository) ListExerciseDurationsByEntryIDs(entryIDs []uint) ([]models.ExerciseEvent, error) {
	records := make([]models.ExerciseEvent, 0)
	if err := repo.database.
		Select("id", "daily_entry_id", "duration_minutes").
		Where("daily_entry_id IN ?", entryIDs).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) CreateExerciseEvent(record *models.ExerciseEvent) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) DeleteExerciseEvent(patientID uint, recordID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", recordID, patientID).Delete(&models.ExerciseEvent{}).Error
}

// Vital readings.

func (repo *DailyRecordRepository) ListVitalReadingsByEntry(entryID uint) ([]models.VitalReading, error) {
	records := make([]models.VitalReading, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("time ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) CreateVitalReading(record *models.VitalReading) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) DeleteVitalReading(patientID uint, recordID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", recordID, patientID).Delete(&models.VitalReading{}).Error
}

// Medication events.

func (repo *DailyRecordRepository) ListMedicationEventsByEntry(entryID uint) ([]models.MedicationEvent, error) {
	records := make([]models.MedicationEvent, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("time ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) CreateMedicationEvent(record *models.MedicationEvent) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) DeleteMedicationEvent(patientID uint, recordID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", recordID, patientID).Delete(&models.MedicationEvent{}).Error
}

// Symptom events.

func (repo *DailyRecordRepository) ListSymptomEventsByEntry(entryID uint) ([]models.SymptomEvent, error) {
	records := make([]models.SymptomEvent, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("time ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) CreateSymptomEvent(record *models.SymptomEvent) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) DeleteSymptomEvent(patientID uint, recordID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", recordID, patientID).Delete(&models.SymptomEvent{}).Error
}

// Regimen notes (at most one per day).

func (repo *DailyRecordRepository) FindRegimenNoteByEntry(entryID uint) (models.RegimenNote, bool, error) {
	var record models.RegimenNote
	result := repo.database.Where("daily_entry_id = ?", entryID).Limit(1).Find(&record)
	if result.Error != nil {
		return models.RegimenNote{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.RegimenNote{}, false, nil
	}
	return record, true, nil
}

func (repo *DailyRecordRepository) CreateRegimenNote(record *models.RegimenNote) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) SaveRegimenNote(record *models.RegimenNote) error {
	return repo.database.Save(record).Error
}
