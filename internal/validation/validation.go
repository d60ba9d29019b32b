package validation

import (
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// ValidateMoodEntry checks a mood entry before it is stored.
func ValidateMoodEntry(e models.MoodEntry) error {
	if e.Mood < constants.MoodMin || e.Mood > constants.MoodMax {
		return fmt.Errorf("mood must be between %d and %d", constants.MoodMin, constants.MoodMax)
	}
	if e.Date != "" {
		if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if e.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}
	return nil
}

// ValidateTriggerEntry checks a trigger entry before it is stored.
func ValidateTriggerEntry(e models.TriggerEntry) error {
	if e.Description == "" {
		return fmt.Errorf("trigger description cannot be empty")
	}
	if e.Intensity < constants.IntensityMin || e.Intensity > constants.IntensityMax {
		return fmt.Errorf("intensity must be between %d and %d", constants.IntensityMin, constants.IntensityMax)
	}
	if e.Date != "" {
		if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

// ValidateGratitudeEntry checks a gratitude entry before it is stored.
func ValidateGratitudeEntry(e models.GratitudeEntry) error {
	if e.Text == "" {
		return fmt.Errorf("gratitude text cannot be empty")
	}
	return nil
}

// ValidateGoal checks a goal before it is stored.
func ValidateGoal(g models.Goal) error {
	if g.Title == "" {
		return fmt.Errorf("goal title cannot be empty")
	}
	if g.Progress < 0 || g.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	if g.TargetDate != "" {
		if _, err := time.Parse(constants.DateFormat, g.TargetDate); err != nil {
			return fmt.Errorf("invalid target date format (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

// ValidateVaultEntry checks a vault entry before it is stored.
func ValidateVaultEntry(e models.VaultEntry) error {
	if e.Title == "" {
		return fmt.Errorf("vault entry title cannot be empty")
	}
	return nil
}

// ValidateVaultPassword checks a vault password before it is set.
func ValidateVaultPassword(password string) error {
	if password == "" {
		return fmt.Errorf("vault password cannot be empty")
	}
	return nil
}

// ValidateCategory checks a user-defined category before it is stored.
func ValidateCategory(name string) error {
	if name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	return nil
}
