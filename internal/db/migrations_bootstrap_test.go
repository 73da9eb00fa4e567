package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/wrenfield/carelog/internal/models"
)

func openTestDatabase(t *testing.T) *Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "carelog-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return NewRepositories(database)
}

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "carelog-clean.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	applied, err := loadAppliedMigrationVersions(database)
	if err != nil {
		t.Fatalf("load applied versions: %v", err)
	}
	if _, ok := applied["0001"]; !ok {
		t.Fatalf("expected migration 0001 applied, got %v", applied)
	}

	for _, table := range []string{
		"users", "care_links", "patient_configs", "daily_entries",
		"sleep_blocks", "morning_entries", "food_events", "fluid_totals",
		"bowel_movements", "exercise_events", "vital_readings",
		"medication_events", "symptom_events", "regimen_notes",
		"cycle_logs", "cycle_comments", "formulations", "treatments",
		"formulation_intakes", "treatment_completions", "saved_items",
	} {
		var count int64
		if err := database.Raw(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count).Error; err != nil {
			t.Fatalf("inspect table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestOpenSQLiteIsIdempotentAcrossReopens(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "carelog-reopen.db")
	if _, err := OpenSQLite(databasePath); err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := OpenSQLite(databasePath); err != nil {
		t.Fatalf("second open: %v", err)
	}
}

func TestDailyEntryUniquePerPatientAndDate(t *testing.T) {
	repos := openTestDatabase(t)

	user := models.User{Email: "ana@example.com", PasswordHash: "hash", Role: models.RolePatient, ShareToken: "token-1"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	first := models.DailyEntry{PatientID: user.ID, Date: date}
	if err := repos.Entries.Create(&first); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	duplicate := models.DailyEntry{PatientID: user.ID, Date: date}
	if err := repos.Entries.Create(&duplicate); err == nil {
		t.Fatalf("expected unique constraint on (patient, date)")
	}

	found, ok, err := repos.Entries.FindByPatientAndDayRange(user.ID, date, date.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("find entry: %v", err)
	}
	if !ok || found.ID != first.ID {
		t.Fatalf("expected entry %d, got %+v (found=%v)", first.ID, found, ok)
	}
}

func TestListByPatientRangeOrdersNewestFirst(t *testing.T) {
	repos := openTestDatabase(t)

	user := models.User{Email: "ana@example.com", PasswordHash: "hash", Role: models.RolePatient, ShareToken: "token-1"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	for day := 1; day <= 3; day++ {
		entry := models.DailyEntry{PatientID: user.ID, Date: time.Date(2026, 7, day, 0, 0, 0, 0, time.UTC)}
		if err := repos.Entries.Create(&entry); err != nil {
			t.Fatalf("create entry %d: %v", day, err)
		}
	}

	entries, err := repos.Entries.ListByPatientRange(
		user.ID,
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for index := 1; index < len(entries); index++ {
		if entries[index].Date.After(entries[index-1].Date) {
			t.Fatalf("expected newest first, got %s before %s", entries[index-1].Date, entries[index].Date)
		}
	}
}

func TestFormulationIntakeUniquePerEntry(t *testing.T) {
	repos := openTestDatabase(t)

	user := models.User{Email: "ana@example.com", PasswordHash: "hash", Role: models.RolePatient, ShareToken: "token-1"}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	entry := models.DailyEntry{PatientID: user.ID, Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)}
	if err := repos.Entries.Create(&entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	formulation := models.Formulation{PatientID: user.ID, Name: "iron", StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	if err := repos.Regimen.CreateFormulation(&formulation); err != nil {
		t.Fatalf("create formulation: %v", err)
	}

	intake := models.FormulationIntake{PatientID: user.ID, DailyEntryID: entry.ID, FormulationID: formulation.ID, Status: models.IntakeTaken}
	if err := repos.Regimen.CreateIntake(&intake); err != nil {
		t.Fatalf("create intake: %v", err)
	}

	duplicate := models.FormulationIntake{PatientID: user.ID, DailyEntryID: entry.ID, FormulationID: formulation.ID, Status: models.IntakeSkipped}
	if err := repos.Regimen.CreateIntake(&duplicate); err == nil {
		t.Fatalf("expected unique constraint on (entry, formulation)")
	}

	intake.Status = models.IntakePartial
	if err := repos.Regimen.SaveIntake(&intake); err != nil {
		t.Fatalf("save intake: %v", err)
	}
	saved, found, err := repos.Regimen.FindIntake(entry.ID, formulation.ID)
	if err != nil || !found {
		t.Fatalf("find intake: %v (found=%v)", err, found)
	}
	if saved.Status != models.IntakePartial {
		t.Fatalf("expected partial, got %q", saved.Status)
	}
}

func TestCareLinkListPatientsByClinician(t *testing.T) {
	repos := openTestDatabase(t)

	patient := models.User{Email: "ana@example.com", PasswordHash: "hash", Role: models.RolePatient, ShareToken: "token-1"}
	clinician := models.User{Email: "doc@example.com", PasswordHash: "hash", Role: models.RoleClinician, ShareToken: "token-2"}
	if err := repos.Users.Create(&patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if err := repos.Users.Create(&clinician); err != nil {
		t.Fatalf("create clinician: %v", err)
	}

	if err := repos.CareLinks.Create(&models.CareLink{ClinicianID: clinician.ID, PatientID: patient.ID}); err != nil {
		t.Fatalf("create care link: %v", err)
	}

	linked, err := repos.CareLinks.Exists(clinician.ID, patient.ID)
	if err != nil || !linked {
		t.Fatalf("expected link to exist, err=%v", err)
	}

	patients, err := repos.CareLinks.ListPatientsByClinician(clinician.ID)
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(patients) != 1 || patients[0].ID != patient.ID {
		t.Fatalf("expected linked patient, got %+v", patients)
	}
}
