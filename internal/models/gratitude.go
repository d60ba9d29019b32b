package models

import "time"

// GratitudeEntry is a short free-text note of something to be grateful for.
type GratitudeEntry struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Date       string    `json:"date"` // YYYY-MM-DD format
	CreatedAt  time.Time `json:"created_at"`
	IsFavorite bool      `json:"is_favorite,omitempty"`
}

func (e GratitudeEntry) EntryID() int64         { return e.ID }
func (e GratitudeEntry) EntryDate() string      { return e.Date }
func (e GratitudeEntry) Favorite() bool         { return e.IsFavorite }
func (e GratitudeEntry) CategoryName() string   { return "" }
func (e GratitudeEntry) SearchFields() []string { return []string{e.Text} }
