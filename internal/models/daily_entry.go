package models

import "time"

// DailyEntry is the anchor row: one per patient per calendar date. Every
// other daily record foreign-keys to it. Created lazily on first access,
// never deleted on its own.
type DailyEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PatientID       uint      `gorm:"not null;uniqueIndex:uidx_patient_date" json:"patient_id"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex:uidx_patient_date" json:"date"`
	EnergyPhysical  *int      `json:"energy_physical"`
	EnergyMental    *int      `json:"energy_mental"`
	EnergyEmotional *int      `json:"energy_emotional"`
	EnergyDrive     *int      `json:"energy_drive"`
	Mood            *int      `json:"mood"`
	Reflection      string    `json:"reflection"`
	CycleDay        *int      `json:"cycle_day"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
