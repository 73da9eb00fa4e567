package services

import (
	"testing"
	"time"

	"github.com/wrenfield/carelog/internal/models"
)

func dayAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRegimenActiveOnWindowBoundaries(t *testing.T) {
	start := dayAt(2026, 4, 10)
	stop := dayAt(2026, 4, 20)
	window := RegimenWindow{ItemID: 1, StartDate: start, StopDate: &stop}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{name: "day before start", day: dayAt(2026, 4, 9), want: false},
		{name: "start day", day: dayAt(2026, 4, 10), want: true},
		{name: "inside window", day: dayAt(2026, 4, 15), want: true},
		{name: "stop day", day: dayAt(2026, 4, 20), want: true},
		{name: "day after stop", day: dayAt(2026, 4, 21), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegimenActiveOn(window, tt.day); got != tt.want {
				t.Fatalf("RegimenActiveOn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegimenActiveOnOpenEndedWindow(t *testing.T) {
	window := RegimenWindow{ItemID: 1, StartDate: dayAt(2026, 4, 10)}

	if !RegimenActiveOn(window, dayAt(2030, 1, 1)) {
		t.Fatalf("expected open-ended window to stay active")
	}
}

func TestAdherencePercentRounding(t *testing.T) {
	active := map[uint]struct{}{1: {}, 2: {}, 3: {}}

	oneOfThree := AdherencePercent(active, []AdherenceRow{
		{ItemID: 1, Status: models.IntakeTaken},
	}, intakeCountedStatuses)
	if oneOfThree != 33 {
		t.Fatalf("expected 33, got %d", oneOfThree)
	}

	twoOfThree := AdherencePercent(active, []AdherenceRow{
		{ItemID: 1, Status: models.IntakeTaken},
		{ItemID: 2, Status: models.IntakePartial},
	}, intakeCountedStatuses)
	if twoOfThree != 67 {
		t.Fatalf("expected 67, got %d", twoOfThree)
	}
}

func TestAdherencePercentZeroActiveItems(t *testing.T) {
	percent := AdherencePercent(map[uint]struct{}{}, []AdherenceRow{
		{ItemID: 1, Status: models.IntakeTaken},
	}, intakeCountedStatuses)
	if percent != 0 {
		t.Fatalf("expected 0 with no active items, got %d", percent)
	}
}

func TestAdherencePercentIgnoresSkippedAndInactive(t *testing.T) {
	active := map[uint]struct{}{1: {}, 2: {}}

	percent := AdherencePercent(active, []AdherenceRow{
		{ItemID: 1, Status: models.IntakeSkipped},
		{ItemID: 9, Status: models.IntakeTaken},
		{ItemID: 2, Status: models.IntakeTaken},
	}, intakeCountedStatuses)
	if percent != 50 {
		t.Fatalf("expected 50, got %d", percent)
	}
}

func TestCompletionStatusesCountPartial(t *testing.T) {
	active := map[uint]struct{}{7: {}}

	percent := AdherencePercent(active, []AdherenceRow{
		{ItemID: 7, Status: models.CompletionPartial},
	}, completionCountedStatuses)
	if percent != 100 {
		t.Fatalf("expected 100, got %d", percent)
	}
}

func TestAdherenceRowConverters(t *testing.T) {
	intakes := IntakeRows([]models.FormulationIntake{
		{FormulationID: 3, Status: models.IntakeTaken},
	})
	if len(intakes) != 1 || intakes[0].ItemID != 3 || intakes[0].Status != models.IntakeTaken {
		t.Fatalf("unexpected intake rows: %+v", intakes)
	}

	completions := CompletionRows([]models.TreatmentCompletion{
		{TreatmentID: 5, Status: models.CompletionSkipped},
	})
	if len(completions) != 1 || completions[0].ItemID != 5 {
		t.Fatalf("unexpected completion rows: %+v", completions)
	}
}
