package db

import (
	"github.com/wrenfield/carelog/internal/models"
	"gorm.io/gorm"
)

type RegimenRepository struct {
	database *gorm.DB
}

func NewRegimenRepository(database *gorm.DB) *RegimenRepository {
	return &RegimenRepository{database: database}
}

// Formulations.

func (repo *RegimenRepository) ListFormulationsByPatient(patientID uint) ([]models.Formulation, error) {
	items := make([]models.Formulation, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("start_date ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *RegimenRepository) FindFormulationByID(patientID uint, formulationID uint) (models.Formulation, bool, error) {
	var item models.Formulation
	result := repo.database.Where("id = ? AND patient_id = ?", formulationID, patientID).Limit(1).Find(&item)
	if result.Error != nil {
		return models.Formulation{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Formulation{}, false, nil
	}
	return item, true, nil
}

func (repo *RegimenRepository) CreateFormulation(item *models.Formulation) error {
	return repo.database.Create(item).Error
}

func (repo *RegimenRepository) SaveFormulation(item *models.Formulation) error {
	return repo.database.Save(item).Error
}

// Treatments.

func (repo *RegimenRepository) ListTreatmentsByPatient(patientID uint) ([]models.Treatment, error) {
	items := make([]models.Treatment, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("start_date ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *RegimenRepository) FindTreatmentByID(patientID uint, treatmentID uint) (models.Treatment, bool, error) {
	var item models.Treatment
	result := repo.database.Where("id = ? AND patient_id = ?", treatmentID, patientID).Limit(1).Find(&item)
	if result.Error != nil {
		return models.Treatment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Treatment{}, false, nil
	}
	return item, true, nil
}

func (repo *RegimenRepository) CreateTreatment(item *models.Treatment) error {
	return repo.database.Create(item).Error
}

func (repo *RegimenRepository) SaveTreatment(item *models.Treatment) error {
	return repo.database.Save(item).Error
}

// Formulation intakes.

func (repo *RegimenRepository) ListIntakesByEntry(entryID uint) ([]models.FormulationIntake, error) {
	rows := make([]models.FormulationIntake, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *RegimenRepository) ListIntakesByEntryIDs(entryIDs []uint) ([]models.FormulationIntake, error) {
	rows := make([]models.FormulationIntake, 0)
	if err := repo.database.Where("daily_entry_id IN ?", entryIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *RegimenRepository) FindIntake(entryID uint, formulationID uint) (models.FormulationIntake, bool, error) {
	var row models.FormulationIntake
	result := repo.database.Where("daily_entry_id = ? AND formulation_id = ?", entryID, formulationID).Limit(1).Find(&row)
	if result.Error != nil {
		return models.FormulationIntake{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FormulationIntake{}, false, nil
	}
	return row, true, nil
}

func (repo *RegimenRepository) CreateIntake(row *models.FormulationIntake) error {
	return repo.database.Create(row).Error
}

func (repo *RegimenRepository) SaveIntake(row *models.FormulationIntake) error {
	return repo.database.Save(row).Error
}

// Treatment completions.

func (repo *RegimenRepository) ListCompletionsByEntry(entryID uint) ([]models.TreatmentCompletion, error) {
	rows := make([]models.TreatmentCompletion, 0)
	if err := repo.database.Where("daily_entry_id = ?", entryID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *RegimenRepository) ListCompletionsByEntryIDs(entryIDs []uint) ([]models.TreatmentCompletion, error) {
	rows := make([]models.TreatmentCompletion, 0)
	if err := repo.database.Where("daily_entry_id IN ?", entryIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *RegimenRepository) FindCompletion(entryID uint, treatmentID uint) (models.TreatmentCompletion, bool, error) {
	var row models.TreatmentCompletion
	result := repo.database.Where("daily_entry_id = ? AND treatment_id = ?", entryID, treatmentID).Limit(1).Find(&row)
	if result.Error != nil {
		return models.TreatmentCompletion{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TreatmentCompletion{}, false, nil
	}
	return row, true, nil
}

func (repo *RegimenRepository) CreateCompletion(row *models.TreatmentCompletion) error {
	return repo.database.Create(row).Error
}

func (repo *RegimenRepository) SaveCompletion(row *models.TreatmentCompletion) error {
	return repo.database.Save(row).Error
}
