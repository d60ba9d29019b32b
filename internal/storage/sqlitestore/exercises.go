package sqlitestore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddExerciseHistory(e models.ExerciseHistoryEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	extra, err := json.Marshal(e.Extra)
	if err != nil {
		return fmt.Errorf("failed to serialize extra: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO exercise_history (id, technique_id, note, date, duration_sec, extra, created_at, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.TechniqueID, e.Note, e.Date, e.Duration, string(extra),
		e.CreatedAt.UTC().Format(time.RFC3339), e.IsFavorite,
	)
	return err
}

func (s *Store) GetExerciseHistory() ([]models.ExerciseHistoryEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, technique_id, note, date, duration_sec, extra, created_at, is_favorite
		FROM exercise_history ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ExerciseHistoryEntry
	for rows.Next() {
		var e models.ExerciseHistoryEntry
		var extra, createdAt string
		if err := rows.Scan(&e.ID, &e.TechniqueID, &e.Note, &e.Date, &e.Duration, &extra, &createdAt, &e.IsFavorite); err != nil {
			return nil, err
		}
		if extra != "" && extra != "null" {
			_ = json.Unmarshal([]byte(extra), &e.Extra)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteExerciseHistory(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM exercise_history WHERE id = ?`, id)
	return err
}

func (s *Store) ToggleTechniqueFavorite(techniqueID string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	res, err := s.db.Exec(`DELETE FROM exercise_favorites WHERE technique_id = ?`, techniqueID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	_, err = s.db.Exec(`INSERT INTO exercise_favorites (technique_id) VALUES (?)`, techniqueID)
	return err
}

func (s *Store) GetTechniqueFavorites() ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT technique_id FROM exercise_favorites ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) IncrementCompletionCount(techniqueID string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
		INSERT INTO exercise_counts (technique_id, count) VALUES (?, 1)
		ON CONFLICT(technique_id) DO UPDATE SET count = count + 1`, techniqueID)
	return err
}

func (s *Store) GetCompletionCounts() (map[string]int, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`SELECT technique_id, count FROM exercise_counts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, rows.Err()
}
