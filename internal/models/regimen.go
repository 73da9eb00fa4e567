package models

import "time"

const (
	IntakeTaken   = "taken"
	IntakeSkipped = "skipped"
	IntakePartial = "partial"
)

const (
	CompletionCompleted = "completed"
	CompletionSkipped   = "skipped"
	CompletionPartial   = "partial"
)

// Formulation is a patient-scoped prescription item with an open or closed
// validity window. Active on day D iff StartDate <= D and (StopDate is nil
// or StopDate >= D).
type Formulation struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PatientID uint       `gorm:"not null;index" json:"patient_id"`
	Name      string     `gorm:"not null" json:"name"`
	Dose      string     `json:"dose"`
	Schedule  string     `json:"schedule"`
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	StopDate  *time.Time `gorm:"type:date" json:"stop_date"`
	CreatedAt time.Time  `json:"created_at"`
}

// Treatment mirrors Formulation for non-medication regimen items
// (physio, therapy sessions, protocols). Same validity-window rule.
type Treatment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PatientID uint       `gorm:"not null;index" json:"patient_id"`
	Name      string     `gorm:"not null" json:"name"`
	Kind      string     `json:"kind"`
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	StopDate  *time.Time `gorm:"type:date" json:"stop_date"`
	CreatedAt time.Time  `json:"created_at"`
}

type FormulationIntake struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID  uint      `gorm:"not null;uniqueIndex:uidx_entry_formulation" json:"daily_entry_id"`
	FormulationID uint      `gorm:"not null;uniqueIndex:uidx_entry_formulation" json:"formulation_id"`
	Status        string    `gorm:"not null" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TreatmentCompletion struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PatientID    uint      `gorm:"not null;index" json:"patient_id"`
	DailyEntryID uint      `gorm:"not null;uniqueIndex:uidx_entry_treatment" json:"daily_entry_id"`
	TreatmentID  uint      `gorm:"not null;uniqueIndex:uidx_entry_treatment" json:"treatment_id"`
	Status       string    `gorm:"not null" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func IsIntakeStatus(status string) bool {
	return status == IntakeTaken || status == IntakeSkipped || status == IntakePartial
}

func IsCompletionStatus(status string) bool {
	return status == CompletionCompleted || status == CompletionSkipped || status == CompletionPartial
}
