package db

import (
	"github.com/wrenfield/carelog/internal/models"
	"gorm.io/gorm"
)

type PatientConfigRepository struct {
	database *gorm.DB
}

func NewPatientConfigRepository(database *gorm.DB) *PatientConfigRepository {
	return &PatientConfigRepository{database: database}
}

func (repo *PatientConfigRepository) FindByPatient(patientID uint) (models.PatientConfig, bool, error) {
	var config models.PatientConfig
	result := repo.database.Where("patient_id = ?", patientID).Limit(1).Find(&config)
	if result.Error != nil {
		return models.PatientConfig{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PatientConfig{}, false, nil
	}
	return config, true, nil
}

func (repo *PatientConfigRepository) Create(config *models.PatientConfig) error {
	return repo.database.Create(config).Error
}

func (repo *PatientConfigRepository) Save(config *models.PatientConfig) error {
	return repo.database.Save(config).Error
}
