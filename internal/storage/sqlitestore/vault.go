package sqlitestore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddVaultEntry(e models.VaultEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
		INSERT INTO vault_entries (id, title, content, category, created_at, updated_at, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Content, e.Category,
		e.CreatedAt.UTC().Format(time.RFC3339), e.UpdatedAt.UTC().Format(time.RFC3339), e.IsFavorite,
	)
	return err
}

func (s *Store) GetVaultEntries() ([]models.VaultEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, title, content, category, created_at, updated_at, is_favorite
		FROM vault_entries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.VaultEntry
	for rows.Next() {
		var e models.VaultEntry
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.Category, &createdAt, &updatedAt, &e.IsFavorite); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateVaultEntry(e models.VaultEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
		UPDATE vault_entries SET title = ?, content = ?, category = ?, updated_at = ?, is_favorite = ?
		WHERE id = ?`,
		e.Title, e.Content, e.Category, e.UpdatedAt.UTC().Format(time.RFC3339), e.IsFavorite, e.ID,
	)
	return err
}

func (s *Store) DeleteVaultEntry(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM vault_entries WHERE id = ?`, id)
	return err
}

func (s *Store) GetVaultCategories() ([]models.VaultCategory, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, name, color, keywords FROM vault_categories ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.VaultCategory
	for rows.Next() {
		var c models.VaultCategory
		var keywords string
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &keywords); err != nil {
			return nil, err
		}
		if keywords != "" {
			_ = json.Unmarshal([]byte(keywords), &c.Keywords)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *Store) AddVaultCategory(c models.VaultCategory) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	keywords, err := json.Marshal(c.Keywords)
	if err != nil {
		return fmt.Errorf("failed to serialize keywords: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO vault_categories (id, name, color, keywords) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Color, string(keywords))
	return err
}

func (s *Store) DeleteVaultCategory(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM vault_categories WHERE id = ?`, id)
	return err
}
