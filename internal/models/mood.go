package models

import "time"

// MoodEntry is a single mood check-in on the -10..10 journal scale.
type MoodEntry struct {
	ID         int64     `json:"id"`
	Mood       int       `json:"mood"`
	Note       string    `json:"note,omitempty"`
	Activities []string  `json:"activities,omitempty"`
	Date       string    `json:"date"` // YYYY-MM-DD format
	Time       string    `json:"time"` // HH:MM format
	CreatedAt  time.Time `json:"created_at"`
	IsFavorite bool      `json:"is_favorite,omitempty"`
}

func (e MoodEntry) EntryID() int64        { return e.ID }
func (e MoodEntry) EntryDate() string     { return e.Date }
func (e MoodEntry) Favorite() bool        { return e.IsFavorite }
func (e MoodEntry) CategoryName() string  { return "" }
func (e MoodEntry) SearchFields() []string {
	return append([]string{e.Note}, e.Activities...)
}
