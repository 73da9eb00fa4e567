package models

import "time"

const (
	BleedingNone     = "none"
	BleedingSpotting = "spotting"
	BleedingLight    = "light"
	BleedingMedium   = "medium"
	BleedingHeavy    = "heavy"
)

const (
	CommentAuthorPatient   = "patient"
	CommentAuthorClinician = "clinician"
)

// CycleLog is at most one per daily entry. Duplicates created by racing
// writers are tolerated: readers take the most recently created row.
type CycleLog struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	PatientID            uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID         uint      `gorm:"not null;index" json:"daily_entry_id"`
	CycleDay             *int      `json:"cycle_day"`
	PhysicalSymptomKeys  []string  `gorm:"serializer:json" json:"physical_symptom_keys"`
	EmotionalSymptomKeys []string  `gorm:"serializer:json" json:"emotional_symptom_keys"`
	BleedingQuantity     string    `json:"bleeding_quantity"`
	BleedingColor        string    `json:"bleeding_color"`
	BleedingVolume       string    `json:"bleeding_volume"`
	HasClots             bool      `json:"has_clots"`
	HasMucus             bool      `json:"has_mucus"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type CycleComment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CycleLogID uint      `gorm:"not null;index" json:"cycle_log_id"`
	AuthorID   uint      `gorm:"not null" json:"author_id"`
	AuthorRole string    `gorm:"not null;default:patient" json:"author_role"`
	Body       string    `gorm:"not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
