package services

import (
	"errors"

	"github.com/wrenfield/carelog/internal/models"
)

var (
	ErrTrackingWindowOutOfRange = errors.New("tracking window out of range")
	ErrEditWindowOutOfRange     = errors.New("edit window out of range")
)

const (
	minTrackingWindowDays = 1
	maxTrackingWindowDays = 90
	minEditWindowDays     = 0
	maxEditWindowDays     = 30
)

type ConfigRepository interface {
	FindByPatient(patientID uint) (models.PatientConfig, bool, error)
	Create(config *models.PatientConfig) error
	Save(config *models.PatientConfig) error
}

type ConfigService struct {
	configs ConfigRepository
}

func NewConfigService(configs ConfigRepository) *ConfigService {
	return &ConfigService{configs: configs}
}

// GetOrCreate returns the patient's config, creating a default row on
// first access.
func (service *ConfigService) GetOrCreate(patientID uint) (models.PatientConfig, error) {
	config, found, err := service.configs.FindByPatient(patientID)
	if err != nil {
		return models.PatientConfig{}, err
	}
	if found {
		return config, nil
	}

	config = models.PatientConfig{
		PatientID:          patientID,
		TrackingWindowDays: models.DefaultTrackingWindowDays,
		EditWindowDays:     models.DefaultEditWindowDays,
	}
	if err := service.configs.Create(&config); err != nil {
		existing, found, findErr := service.configs.FindByPatient(patientID)
		if findErr == nil && found {
			return existing, nil
		}
		return models.PatientConfig{}, err
	}
	return config, nil
}

type ConfigUpdate struct {
	TrackingWindowDays *int
	EditWindowDays     *int
}

func (service *ConfigService) Update(patientID uint, update ConfigUpdate) (models.PatientConfig, error) {
	if update.TrackingWindowDays != nil {
		if *update.TrackingWindowDays < minTrackingWindowDays || *update.TrackingWindowDays > maxTrackingWindowDays {
			return models.PatientConfig{}, ErrTrackingWindowOutOfRange
		}
	}
	if update.EditWindowDays != nil {
		if *update.EditWindowDays < minEditWindowDays || *update.EditWindowDays > maxEditWindowDays {
			return models.PatientConfig{}, ErrEditWindowOutOfRange
		}
	}

	config, err := service.GetOrCreate(patientID)
	if err != nil {
		return models.PatientConfig{}, err
	}
	if update.TrackingWindowDays != nil {
		config.TrackingWindowDays = *update.TrackingWindowDays
	}
	if update.EditWindowDays != nil {
		config.EditWindowDays = *update.EditWindowDays
	}
	if err := service.configs.Save(&config); err != nil {
		return models.PatientConfig{}, err
	}
	return config, nil
}
