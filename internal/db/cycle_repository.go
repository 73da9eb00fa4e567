package db

import (
	"github.com/wrenfield/carelog/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

// FindLatestCycleLogByEntry returns the newest cycle log for the entry.
// Duplicates can only exist after a historical creation race; newest wins.
func (repo *CycleRepository) FindLatestCycleLogByEntry(entryID uint) (models.CycleLog, bool, error) {
	var cycleLog models.CycleLog
	result := repo.database.
		Where("daily_entry_id = ?", entryID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&cycleLog)
	if result.Error != nil {
		return models.CycleLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleLog{}, false, nil
	}
	return cycleLog, true, nil
}

// ListCycleLogsByEntryIDs returns cycle logs for the entry set, newest
// first so that callers keeping the first row per entry get the latest.
func (repo *CycleRepository) ListCycleLogsByEntryIDs(entryIDs []uint) ([]models.CycleLog, error) {
	cycleLogs := make([]models.CycleLog, 0)
	if err := repo.database.
		Where("daily_entry_id IN ?", entryIDs).
		Order("created_at DESC, id DESC").
		Find(&cycleLogs).Error; err != nil {
		return nil, err
	}
	return cycleLogs, nil
}

func (repo *CycleRepository) ListEntryIDsWithCycleLog(entryIDs []uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := repo.database.Model(&models.CycleLog{}).
		Distinct("daily_entry_id").
		Where("daily_entry_id IN ?", entryIDs).
		Pluck("daily_entry_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *CycleRepository) CreateCycleLog(cycleLog *models.CycleLog) error {
	return repo.database.Create(cycleLog).Error
}

func (repo *CycleRepository) SaveCycleLog(cycleLog *models.CycleLog) error {
	return repo.database.Save(cycleLog).Error
}

func (repo *CycleRepository) ListCommentsByCycleLog(cycleLogID uint) ([]models.CycleComment, error) {
	comments := make([]models.CycleComment, 0)
	if err := repo.database.
		Where("cycle_log_id = ?", cycleLogID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CycleRepository) CreateComment(comment *models.CycleComment) error {
	return repo.database.Create(comment).Error
}
