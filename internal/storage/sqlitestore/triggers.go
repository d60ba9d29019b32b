package sqlitestore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddTriggerEntry(e models.TriggerEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
		INSERT INTO trigger_entries (id, description, category, intensity, coping_strategy, date, time, created_at, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Description, e.Category, e.Intensity, e.CopingStrategy, e.Date, e.Time,
		e.CreatedAt.UTC().Format(time.RFC3339), e.IsFavorite,
	)
	return err
}

func (s *Store) GetTriggerEntries() ([]models.TriggerEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, description, category, intensity, coping_strategy, date, time, created_at, is_favorite
		FROM trigger_entries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.TriggerEntry
	for rows.Next() {
		var e models.TriggerEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Description, &e.Category, &e.Intensity, &e.CopingStrategy, &e.Date, &e.Time, &createdAt, &e.IsFavorite); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateTriggerEntry(e models.TriggerEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
		UPDATE trigger_entries SET description = ?, category = ?, intensity = ?, coping_strategy = ?, date = ?, time = ?, is_favorite = ?
		WHERE id = ?`,
		e.Description, e.Category, e.Intensity, e.CopingStrategy, e.Date, e.Time, e.IsFavorite, e.ID,
	)
	return err
}

func (s *Store) ToggleTriggerFavorite(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`UPDATE trigger_entries SET is_favorite = NOT is_favorite WHERE id = ?`, id)
	return err
}

func (s *Store) DeleteTriggerEntry(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM trigger_entries WHERE id = ?`, id)
	return err
}

func (s *Store) GetTriggerCategories() ([]models.TriggerCategory, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT id, name, color, keywords FROM trigger_categories ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.TriggerCategory
	for rows.Next() {
		var c models.TriggerCategory
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

func (s *Store) AddTriggerCategory(c models.TriggerCategory) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	keywords, err := json.Marshal(c.Keywords)
	if err != nil {
		return fmt.Errorf("failed to serialize keywords: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO trigger_categories (id, name, color, keywords) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Color, string(keywords))
	return err
}

func (s *Store) UpdateTriggerCategory(c models.TriggerCategory) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	keywords, err := json.Marshal(c.Keywords)
	if err != nil {
		return fmt.Errorf("failed to serialize keywords: %w", err)
	}
	_, err = s.db.Exec(`UPDATE trigger_categories SET name = ?, color = ?, keywords = ? WHERE id = ?`,
		c.Name, c.Color, string(keywords), c.ID)
	return err
}

func (s *Store) DeleteTriggerCategory(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM trigger_categories WHERE id = ?`, id)
	return err
}
