package services

import (
	"errors"
	"testing"

	"github.com/wrenfield/carelog/internal/models"
)

type stubConfigRepo struct {
	configs     []models.PatientConfig
	nextID      uint
	createCalls int
}

func (stub *stubConfigRepo) FindByPatient(patientID uint) (models.PatientConfig, bool, error) {
	for _, config := range stub.configs {
		if config.PatientID == patientID {
			return config, true, nil
		}
	}
	return models.PatientConfig{}, false, nil
}

func (stub *stubConfigRepo) Create(config *models.PatientConfig) error {
	stub.createCalls++
	stub.nextID++
	config.ID = stub.nextID
	stub.configs = append(stub.configs, *config)
	return nil
}

func (stub *stubConfigRepo) Save(config *models.PatientConfig) error {
	for index := range stub.configs {
		if stub.configs[index].ID == config.ID {
			stub.configs[index] = *config
		}
	}
	return nil
}

func TestGetOrCreateConfigAppliesDefaults(t *testing.T) {
	repo := &stubConfigRepo{}
	service := NewConfigService(repo)

	config, err := service.GetOrCreate(12)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if config.TrackingWindowDays != models.DefaultTrackingWindowDays {
		t.Fatalf("expected default tracking window, got %d", config.TrackingWindowDays)
	}
	if config.EditWindowDays != models.DefaultEditWindowDays {
		t.Fatalf("expected default edit window, got %d", config.EditWindowDays)
	}

	if _, err := service.GetOrCreate(12); err != nil {
		t.Fatalf("second GetOrCreate: %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected single create, got %d", repo.createCalls)
	}
}

func TestUpdateConfigValidatesWindows(t *testing.T) {
	service := NewConfigService(&stubConfigRepo{})

	tooLarge := 91
	if _, err := service.Update(12, ConfigUpdate{TrackingWindowDays: &tooLarge}); !errors.Is(err, ErrTrackingWindowOutOfRange) {
		t.Fatalf("expected ErrTrackingWindowOutOfRange, got %v", err)
	}

	negative := -1
	if _, err := service.Update(12, ConfigUpdate{EditWindowDays: &negative}); !errors.Is(err, ErrEditWindowOutOfRange) {
		t.Fatalf("expected ErrEditWindowOutOfRange, got %v", err)
	}
}

func TestUpdateConfigAppliesPartialUpdate(t *testing.T) {
	repo := &stubConfigRepo{}
	service := NewConfigService(repo)

	window := 14
	config, err := service.Update(12, ConfigUpdate{TrackingWindowDays: &window})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if config.TrackingWindowDays != 14 {
		t.Fatalf("expected tracking window 14, got %d", config.TrackingWindowDays)
	}
	if config.EditWindowDays != models.DefaultEditWindowDays {
		t.Fatalf("expected edit window untouched, got %d", config.EditWindowDays)
	}
}
