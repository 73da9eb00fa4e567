package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	CareLinks  *CareLinkRepository
	Configs    *PatientConfigRepository
	Entries    *DailyEntryRepository
	Records    *DailyRecordRepository
	Cycles     *CycleRepository
	Regimen    *RegimenRepository
	SavedItems *SavedItemRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		CareLinks:  NewCareLinkRepository(database),
		Configs:    NewPatientConfigRepository(database),
		Entries:    NewDailyEntryRepository(database),
		Records:    NewDailyRecordRepository(database),
		Cycles:     NewCycleRepository(database),
		Regimen:    NewRegimenRepository(database),
		SavedItems: NewSavedItemRepository(database),
	}
}
