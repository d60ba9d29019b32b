package sqlitestore

import (
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddGratitudeEntry(e models.GratitudeEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
		INSERT INTO gratitude_entries (id, text, date, created_at, is_favorite)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Text, e.Date, e.CreatedAt.UTC().Format(time.RFC3339), e.IsFavorite,
	)
	return err
}

func (s *Store) GetGratitudeEntries() ([]models.GratitudeEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, text, date, created_at, is_favorite
		FROM gratitude_entries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.GratitudeEntry
	for rows.Next() {
		var e models.GratitudeEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Text, &e.Date, &createdAt, &e.IsFavorite); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) ToggleGratitudeFavorite(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`UPDATE gratitude_entries SET is_favorite = NOT is_favorite WHERE id = ?`, id)
	return err
}

func (s *Store) DeleteGratitudeEntry(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM gratitude_entries WHERE id = ?`, id)
	return err
}
