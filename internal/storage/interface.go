package storage

import "github.com/mindtrackhq/mindtrack/internal/models"

// Provider is the persistence contract shared by the local blob store and the
// SQLite store. Every collection is owned by exactly one key; mutations
// rewrite the full collection. Update, toggle, and delete are no-ops for
// absent ids.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Mood entries
	AddMoodEntry(models.MoodEntry) error
	GetMoodEntries() ([]models.MoodEntry, error)
	UpdateMoodEntry(models.MoodEntry) error
	ToggleMoodFavorite(id int64) error
	DeleteMoodEntry(id int64) error

	// Trigger entries
	AddTriggerEntry(models.TriggerEntry) error
	GetTriggerEntries() ([]models.TriggerEntry, error)
	UpdateTriggerEntry(models.TriggerEntry) error
	ToggleTriggerFavorite(id int64) error
	DeleteTriggerEntry(id int64) error

	// Trigger categories
	GetTriggerCategories() ([]models.TriggerCategory, error)
	AddTriggerCategory(models.TriggerCategory) error
	UpdateTriggerCategory(models.TriggerCategory) error
	DeleteTriggerCategory(id string) error

	// Gratitude entries
	AddGratitudeEntry(models.GratitudeEntry) error
	GetGratitudeEntries() ([]models.GratitudeEntry, error)
	ToggleGratitudeFavorite(id int64) error
	DeleteGratitudeEntry(id int64) error

	// Goals
	AddGoal(models.Goal) error
	GetGoals() ([]models.Goal, error)
	UpdateGoal(models.Goal) error
	ToggleGoalFavorite(id int64) error
	DeleteGoal(id int64) error

	// Exercise history, favorites, completion counts
	AddExerciseHistory(models.ExerciseHistoryEntry) error
	GetExerciseHistory() ([]models.ExerciseHistoryEntry, error)
	DeleteExerciseHistory(id int64) error
	ToggleTechniqueFavorite(techniqueID string) error
	GetTechniqueFavorites() ([]string, error)
	IncrementCompletionCount(techniqueID string) error
	GetCompletionCounts() (map[string]int, error)

	// Vault
	GetVaultPassword() (string, error)
	SetVaultPassword(password string) error
	AddVaultEntry(models.VaultEntry) error
	GetVaultEntries() ([]models.VaultEntry, error)
	UpdateVaultEntry(models.VaultEntry) error
	DeleteVaultEntry(id int64) error
	GetVaultCategories() ([]models.VaultCategory, error)
	AddVaultCategory(models.VaultCategory) error
	DeleteVaultCategory(id string) error

	// Profile snapshot (read-mirrored identity, cleared on sign-out)
	GetProfileSnapshot() (models.Identity, error)
	SaveProfileSnapshot(models.Identity) error
	ClearProfileSnapshot() error

	// Utils
	GetDataPath() string
}
