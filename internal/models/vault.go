package models

import "time"

// VaultEntry is a private note behind the vault password gate. The gate is a
// convenience barrier only; entries are stored unencrypted.
type VaultEntry struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category,omitempty"` // references VaultCategory by name
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	IsFavorite bool      `json:"is_favorite,omitempty"`
}

func (e VaultEntry) EntryID() int64       { return e.ID }
func (e VaultEntry) EntryDate() string    { return e.CreatedAt.Format("2006-01-02") }
func (e VaultEntry) Favorite() bool       { return e.IsFavorite }
func (e VaultEntry) CategoryName() string { return e.Category }
func (e VaultEntry) SearchFields() []string {
	return []string{e.Title, e.Content}
}

// VaultCategory labels vault entries, referenced by name like trigger categories.
type VaultCategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Keywords []string `json:"keywords,omitempty"`
}

// DefaultVaultCategories is the seed set written on first load.
func DefaultVaultCategories() []VaultCategory {
	return []VaultCategory{
		{ID: "vault-personal", Name: "Personal", Color: "#61afef"},
		{ID: "vault-therapy", Name: "Therapy", Color: "#98c379", Keywords: []string{"session", "homework"}},
		{ID: "vault-other", Name: "Other", Color: "#abb2bf"},
	}
}
