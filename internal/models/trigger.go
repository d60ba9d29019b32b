package models

import "time"

// TriggerEntry records a stressor, how intense it felt, and what helped.
type TriggerEntry struct {
	ID             int64     `json:"id"`
	Description    string    `json:"description"`
	Category       string    `json:"category,omitempty"` // references TriggerCategory by name
	Intensity      int       `json:"intensity"`
	CopingStrategy string    `json:"coping_strategy,omitempty"`
	Date           string    `json:"date"` // YYYY-MM-DD format
	Time           string    `json:"time"` // HH:MM format
	CreatedAt      time.Time `json:"created_at"`
	IsFavorite     bool      `json:"is_favorite,omitempty"`
}

func (e TriggerEntry) EntryID() int64       { return e.ID }
func (e TriggerEntry) EntryDate() string    { return e.Date }
func (e TriggerEntry) Favorite() bool       { return e.IsFavorite }
func (e TriggerEntry) CategoryName() string { return e.Category }
func (e TriggerEntry) SearchFields() []string {
	return []string{e.Description, e.CopingStrategy}
}

// TriggerCategory is a user-extensible label for trigger entries. Entries
// reference categories by name, so renaming a category detaches its history.
type TriggerCategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Keywords []string `json:"keywords,omitempty"`
}

// DefaultTriggerCategories is the seed set written on first load.
func DefaultTriggerCategories() []TriggerCategory {
	return []TriggerCategory{
		{ID: "cat-work", Name: "Work", Color: "#e06c75", Keywords: []string{"deadline", "meeting", "boss"}},
		{ID: "cat-social", Name: "Social", Color: "#61afef", Keywords: []string{"crowd", "party", "conflict"}},
		{ID: "cat-health", Name: "Health", Color: "#98c379", Keywords: []string{"sleep", "pain", "illness"}},
		{ID: "cat-family", Name: "Family", Color: "#c678dd", Keywords: []string{"argument", "visit"}},
		{ID: "cat-other", Name: "Other", Color: "#abb2bf"},
	}
}
