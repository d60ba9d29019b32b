package models

import "time"

type TechniqueKind string

const (
	TechniqueCBT TechniqueKind = "cbt"
	TechniqueDBT TechniqueKind = "dbt"
)

// Technique describes one guided CBT/DBT skill from the built-in catalogue.
type Technique struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Kind    TechniqueKind `json:"kind"`
	Summary string        `json:"summary"`
	Steps   []string      `json:"steps,omitempty"`
}

// ExerciseHistoryEntry records one completed guided exercise session.
type ExerciseHistoryEntry struct {
	ID          int64          `json:"id"`
	TechniqueID string         `json:"technique_id"`
	Note        string         `json:"note,omitempty"`
	Date        string         `json:"date"` // YYYY-MM-DD format
	Duration    int            `json:"duration_sec,omitempty"`
	Extra       map[string]int `json:"extra,omitempty"` // e.g. mood_before/mood_after
	CreatedAt   time.Time      `json:"created_at"`
	IsFavorite  bool           `json:"is_favorite,omitempty"`
}

func (e ExerciseHistoryEntry) EntryID() int64       { return e.ID }
func (e ExerciseHistoryEntry) EntryDate() string    { return e.Date }
func (e ExerciseHistoryEntry) Favorite() bool       { return e.IsFavorite }
func (e ExerciseHistoryEntry) CategoryName() string { return e.TechniqueID }
func (e ExerciseHistoryEntry) SearchFields() []string {
	return []string{e.Note}
}
