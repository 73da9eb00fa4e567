package models

import "time"

const (
	VitalBloodGlucose  = "blood_glucose"
	VitalBloodPressure = "blood_pressure"
	VitalEarlyAMTemp   = "early_am_temp"
	VitalPMTemp        = "pm_temp"
	VitalWeight        = "weight"
)

// SleepBlock rows are unbounded in the schema; the bundle surfaces them as
// a list and clients treat the first as the night's block.
type SleepBlock struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PatientID       uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID    uint      `gorm:"not null;index" json:"daily_entry_id"`
	BedTime         string    `json:"bed_time"`
	WakeTime        string    `json:"wake_time"`
	DurationMinutes *int      `json:"duration_minutes"`
	Quality         *int      `json:"quality"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// MorningEntry is at most one per daily entry.
type MorningEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;uniqueIndex" json:"daily_entry_id"`
	WakeTime     string    `json:"wake_time"`
	RestedScore  *int      `json:"rested_score"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

type FoodEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;index" json:"daily_entry_id"`
	Time         string    `json:"time"`
	Description  string    `json:"description"`
	SavedItemID  *uint     `json:"saved_item_id"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// FluidTotals is at most one per daily entry; running totals, not events.
type FluidTotals struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;uniqueIndex" json:"daily_entry_id"`
	WaterMl      int       `json:"water_ml"`
	CaffeineMl   int       `json:"caffeine_ml"`
	OtherMl      int       `json:"other_ml"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BowelMovement struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;index" json:"daily_entry_id"`
	Time         string    `json:"time"`
	BristolScale *int      `json:"bristol_scale"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

type ExerciseEvent struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PatientID       uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID    uint      `gorm:"not null;index" json:"daily_entry_id"`
	Time            string    `json:"time"`
	Description     string    `json:"description"`
	DurationMinutes *int      `json:"duration_minutes"`
	Intensity       string    `json:"intensity"`
	SavedItemID     *uint     `json:"saved_item_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type VitalReading struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PatientID      uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID   uint      `gorm:"not null;index" json:"daily_entry_id"`
	Type           string    `gorm:"not null" json:"type"`
	Value          float64   `json:"value"`
	SecondaryValue *float64  `json:"secondary_value"`
	Unit           string    `json:"unit"`
	Time           string    `json:"time"`
	CreatedAt      time.Time `json:"created_at"`
}

type MedicationEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;index" json:"daily_entry_id"`
	Time         string    `json:"time"`
	Name         string    `json:"name"`
	Dose         string    `json:"dose"`
	SavedItemID  *uint     `json:"saved_item_id"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

type SymptomEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;index" json:"daily_entry_id"`
	Time         string    `json:"time"`
	Name         string    `json:"name"`
	Severity     *int      `json:"severity"`
	SavedItemID  *uint     `json:"saved_item_id"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegimenNote is the free-text note attached to a day's regimen section,
// at most one per daily entry.
type RegimenNote struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;uniqueIndex" json:"daily_entry_id"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
