package utils

import (
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. "Today" is determined by the user's configured timezone, not the
// system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// GetTodayFromSettings returns today's date string (YYYY-MM-DD) using the timezone from settings.
func GetTodayFromSettings(settings models.Settings) (string, error) {
	return GetTodayInTimezone(settings.Timezone)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ParseClock parses a time string in the standard format (HH:MM).
func ParseClock(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// FormatCountdown renders the time remaining until the target date as a short
// human-readable string. Dates in the past render as "overdue".
func FormatCountdown(targetDate string, now time.Time) (string, error) {
	target, err := ParseDate(targetDate)
	if err != nil {
		return "", fmt.Errorf("invalid target date %q: %w", targetDate, err)
	}
	// Compare whole days; the target day itself counts as remaining
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	targetDay := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)

	days := int(targetDay.Sub(nowDay).Hours() / 24)
	switch {
	case days < 0:
		return "overdue", nil
	case days == 0:
		return "due today", nil
	case days == 1:
		return "1 day left", nil
	default:
		return fmt.Sprintf("%d days left", days), nil
	}
}
