package services

import (
	"testing"
	"time"
)

func TestDayRangeNormalizesToLocationMidnight(t *testing.T) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2026, 3, 1, 22, 41, 5, 0, time.UTC)
	start, end := DayRange(raw, location)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight start, got %s", start.Format(time.RFC3339))
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next day end, got %s", end.Format(time.RFC3339))
	}
}

func TestDateAtLocationFallsBackToUTC(t *testing.T) {
	raw := time.Date(2026, 3, 1, 13, 15, 0, 0, time.UTC)
	normalized := DateAtLocation(raw, nil)

	if normalized.Location() != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", normalized.Location())
	}
	if normalized.Hour() != 0 {
		t.Fatalf("expected midnight, got %d", normalized.Hour())
	}
}
