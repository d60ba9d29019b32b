package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddGoal(g models.Goal) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if g.Steps == nil {
		g.Steps = []models.GoalStep{}
	}
	steps, err := json.Marshal(g.Steps)
	if err != nil {
		return fmt.Errorf("failed to serialize steps: %w", err)
	}

	var completedAt *string
	if g.CompletedAt != nil {
		v := g.CompletedAt.UTC().Format(time.RFC3339)
		completedAt = &v
	}

	_, err = s.db.Exec(`
		INSERT INTO goals (id, title, description, target_date, progress, steps, created_at, completed_at, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, g.Description, g.TargetDate, g.Progress, string(steps),
		g.CreatedAt.UTC().Format(time.RFC3339), completedAt, g.IsFavorite,
	)
	return err
}

func (s *Store) GetGoals() ([]models.Goal, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, title, description, target_date, progress, steps, created_at, completed_at, is_favorite
		FROM goals ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		var steps, createdAt string
		var completedAt sql.NullString
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.TargetDate, &g.Progress, &steps, &createdAt, &completedAt, &g.IsFavorite); err != nil {
			return nil, err
		}
		g.Steps = []models.GoalStep{}
		if steps != "" {
			_ = json.Unmarshal([]byte(steps), &g.Steps)
		}
		g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if completedAt.Valid {
			t, err := time.Parse(time.RFC3339, completedAt.String)
			if err == nil {
				g.CompletedAt = &t
			}
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) UpdateGoal(g models.Goal) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	steps, err := json.Marshal(g.Steps)
	if err != nil {
		return fmt.Errorf("failed to serialize steps: %w", err)
	}

	var completedAt *string
	if g.CompletedAt != nil {
		v := g.CompletedAt.UTC().Format(time.RFC3339)
		completedAt = &v
	}

	_, err = s.db.Exec(`
		UPDATE goals SET title = ?, description = ?, target_date = ?, progress = ?, steps = ?, completed_at = ?, is_favorite = ?
		WHERE id = ?`,
		g.Title, g.Description, g.TargetDate, g.Progress, string(steps), completedAt, g.IsFavorite, g.ID,
	)
	return err
}

func (s *Store) ToggleGoalFavorite(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`UPDATE goals SET is_favorite = NOT is_favorite WHERE id = ?`, id)
	return err
}

func (s *Store) DeleteGoal(id int64) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	return err
}
