package models

import "time"

const (
	RolePatient   = "patient"
	RoleClinician = "clinician"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:patient" json:"role"`
	ShareToken   string    `gorm:"uniqueIndex" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// CareLink grants a clinician read access to one patient's data.
type CareLink struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClinicianID uint      `gorm:"not null;uniqueIndex:uidx_clinician_patient" json:"clinician_id"`
	PatientID   uint      `gorm:"not null;uniqueIndex:uidx_clinician_patient" json:"patient_id"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	DefaultTrackingWindowDays = 7
	DefaultEditWindowDays     = 3
)

type PatientConfig struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	PatientID          uint      `gorm:"not null;uniqueIndex" json:"patient_id"`
	TrackingWindowDays int       `gorm:"not null;default:7" json:"tracking_window_days"`
	EditWindowDays     int       `gorm:"not null;default:3" json:"edit_window_days"`
	UpdatedAt          time.Time `json:"updated_at"`
}
