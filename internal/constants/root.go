package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "mindtrack"
	DefaultKeyringKey = "identity-refresh-token"
	DefaultDataPath   = "~/.config/mindtrack/data"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mindtrack-"

	// Lockfile written next to the data dir to guard against a second writer
	LockfileName = "mindtrack.lock"

	// Cache version tag; bump to invalidate previously cached responses
	CacheVersion = "v2"
	CacheDirName = "response-cache"

	// Session States
	StateMoods SessionState = iota
	StateTriggers
	StateGratitude
	StateGoals
	StateVault
	StateExercises
	StateInsights
	StateAddMood
	StateAddTrigger
	StateAddGratitude
	StateAddGoal
	StateAddVaultEntry
	StateVaultUnlock
	StateRelaxation
	StateActivation
	StateConfirmDelete
)

// Storage keys; each collection owns exactly one key and is written as a
// single JSON blob.
const (
	KeyMoodEntries       = "mood_entries"
	KeyTriggerEntries    = "trigger_entries"
	KeyTriggerCategories = "trigger_categories"
	KeyGratitudeEntries  = "gratitude_entries"
	KeyGoals             = "goals"
	KeyExerciseHistory   = "exercise_history"
	KeyExerciseFavorites = "exercise_favorites"
	KeyExerciseCounts    = "exercise_completion_counts"
	KeyVaultEntries      = "safe_entries"
	KeyVaultCategories   = "safe_categories"
	KeyVaultPassword     = "safe_password"
	KeySettings          = "settings"
	KeyProfileSnapshot   = "profile_snapshot"
)
