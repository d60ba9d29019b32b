package validation

import (
	"testing"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func TestValidateMoodEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.MoodEntry
		wantErr bool
	}{
		{"valid", models.MoodEntry{Mood: 5, Date: "2026-08-30", Time: "09:30"}, false},
		{"lowest mood", models.MoodEntry{Mood: -10}, false},
		{"highest mood", models.MoodEntry{Mood: 10}, false},
		{"mood too low", models.MoodEntry{Mood: -11}, true},
		{"mood too high", models.MoodEntry{Mood: 11}, true},
		{"bad date", models.MoodEntry{Mood: 0, Date: "30/08/2026"}, true},
		{"bad time", models.MoodEntry{Mood: 0, Time: "9pm"}, true},
		{"blank date and time allowed", models.MoodEntry{Mood: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMoodEntry(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMoodEntry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTriggerEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.TriggerEntry
		wantErr bool
	}{
		{"valid", models.TriggerEntry{Description: "crowded bus", Intensity: 6}, false},
		{"empty description", models.TriggerEntry{Intensity: 6}, true},
		{"intensity too low", models.TriggerEntry{Description: "x", Intensity: 0}, true},
		{"intensity too high", models.TriggerEntry{Description: "x", Intensity: 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTriggerEntry(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTriggerEntry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	tests := []struct {
		name    string
		goal    models.Goal
		wantErr bool
	}{
		{"valid", models.Goal{Title: "Walk daily"}, false},
		{"empty title", models.Goal{}, true},
		{"progress out of range", models.Goal{Title: "x", Progress: 101}, true},
		{"bad target date", models.Goal{Title: "x", TargetDate: "soon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoal(tt.goal)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGoal() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEmptyRequiredFields(t *testing.T) {
	if err := ValidateGratitudeEntry(models.GratitudeEntry{}); err == nil {
		t.Error("empty gratitude text accepted")
	}
	if err := ValidateVaultEntry(models.VaultEntry{}); err == nil {
		t.Error("empty vault title accepted")
	}
	if err := ValidateVaultPassword(""); err == nil {
		t.Error("empty vault password accepted")
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("empty category name accepted")
	}
}
