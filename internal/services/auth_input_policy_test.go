package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercases and trims", raw: "  Ana@Example.COM ", want: "ana@example.com"},
		{name: "empty input", raw: "   ", want: ""},
		{name: "not an address", raw: "not-an-email", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(tt.raw); got != tt.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" Ana@Example.com ", " StrongPass1 ")
	if err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
	if email != "ana@example.com" || password != "StrongPass1" {
		t.Fatalf("unexpected normalization: %q, %q", email, password)
	}

	if _, _, err := NormalizeCredentialsInput("ana@example.com", "  "); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("broken", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}
}
