package db

import (
	"github.com/wrenfield/carelog/internal/models"
	"gorm.io/gorm"
)

type SavedItemRepository struct {
	database *gorm.DB
}

func NewSavedItemRepository(database *gorm.DB) *SavedItemRepository {
	return &SavedItemRepository{database: database}
}

// ListByPatient returns every preset for the patient, optionally filtered
// by kind.
func (repo *SavedItemRepository) ListByPatient(patientID uint, kind string) ([]models.SavedItem, error) {
	query := repo.database.Where("patient_id = ?", patientID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	items := make([]models.SavedItem, 0)
	if err := query.Order("kind ASC, name ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *SavedItemRepository) Create(item *models.SavedItem) error {
	return repo.database.Create(item).Error
}

func (repo *SavedItemRepository) Delete(patientID uint, itemID uint) error {
	return repo.database.Where("id = ? AND patient_id = ?", itemID, patientID).Delete(&models.SavedItem{}).Error
}
