package models

import "time"

const (
	SavedItemFood       = "food"
	SavedItemExercise   = "exercise"
	SavedItemMedication = "medication"
	SavedItemSymptom    = "symptom"
)

// SavedItem is a patient-scoped preset (favorite food, exercise,
// medication, or symptom). Presets live independently of daily data and
// are never cascaded from it.
type SavedItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	Kind      string    `gorm:"not null" json:"kind"`
	Name      string    `gorm:"not null" json:"name"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func IsSavedItemKind(kind string) bool {
	switch kind {
	case SavedItemFood, SavedItemExercise, SavedItemMedication, SavedItemSymptom:
		return true
	}
	return false
}
