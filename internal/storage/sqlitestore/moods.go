package sqlitestore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddMoodEntry(e models.MoodEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	activities, err := json.Marshal(e.Activities)
	if err != nil {
		return fmt.Errorf("failed to serialize activities: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO mood_entries (id, mood, note, activities, date, time, created_at, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Mood, e.Note, string(activities), e.Date, e.Time,
		e.CreatedAt.UTC().Format(time.RFC3339), e.IsFavorite,
	)
	return err
}

func (s *Store) GetMoodEntries() ([]models.MoodEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, mood, note, activities, date, time, created_at, is_favorite
		FROM mood_entries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var e models.MoodEntry
		var activities, createdAt string
		if err := rows.Scan(&e.ID, &e.Mood, &e.Note, &activities, &e.Date, &e.Time, &createdAt, &e.IsFavorite); err != nil {
			return nil, err
		}
		if activities != "" {
			_ = json.Unmarshal([]byte(activities), &e.Activities)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateMoodEntry(e models.MoodEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	activities, err := json.Marshal(e.Activities)
	if err != nil {
		return fmt.Errorf("failed to serialize activities: %w", err)
	}

	// id and created_at are immutable; everything else is replaced wholesale
	_, err = s.db.Exec(`
		UPDATE mood_entries SET mood = ?, note = ?, activities = ?, date = ?, time = ?, is_favorite = ?
		WHERE id = ?`,
		e.Mood, e.Note, string(activities), e.Date, e.Time, e.IsFavorite, e.ID,
	)
	return err
}

func (s *Store) ToggleMoodFavorite(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`UPDATE mood_entries SET is_favorite = NOT is_favorite WHERE id = ?`, id)
	return err
}

func (s *Store) DeleteMoodEntry(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM mood_entries WHERE id = ?`, id)
	return err
}
