package db

import (
	"time"

	"github.com/wrenfield/carelog/internal/models"
	"gorm.io/gorm"
)

type DailyEntryRepository struct {
	database *gorm.DB
}

func NewDailyEntryRepository(database *gorm.DB) *DailyEntryRepository {
	return &DailyEntryRepository{database: database}
}

func (repo *DailyEntryRepository) FindByPatientAndDayRange(patientID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error) {
	var entry models.DailyEntry
	result := repo.database.
		Where("patient_id = ? AND date >= ? AND date < ?", patientID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyEntry{}, false, nil
	}
	return entry, true, nil
}

// ListByPatientRange returns entries with date in [fromStart, toEnd),
// newest first.
func (repo *DailyEntryRepository) ListByPatientRange(patientID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyEntry, error) {
	entries := make([]models.DailyEntry, 0)
	if err := repo.database.
		Where("patient_id = ? AND date >= ? AND date < ?", patientID, fromStart, toEnd).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DailyEntryRepository) Create(entry *models.DailyEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyEntryRepository) Save(entry *models.DailyEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *DailyEntryRepository) UpdateFields(entryID uint, updates map[string]any) error {
	return repo.database.Model(&models.DailyEntry{}).Where("id = ?", entryID).Updates(updates).Error
}
