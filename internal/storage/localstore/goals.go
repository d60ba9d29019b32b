package localstore

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddGoal(g models.Goal) error {
	if g.Steps == nil {
		g.Steps = []models.GoalStep{}
	}
	return prependRecord(s, constants.KeyGoals, g)
}

func (s *Store) GetGoals() ([]models.Goal, error) {
	return readCollection[models.Goal](s, constants.KeyGoals), nil
}

func (s *Store) UpdateGoal(g models.Goal) error {
	return replaceRecord(s, constants.KeyGoals, g)
}

func (s *Store) ToggleGoalFavorite(id int64) error {
	items := readCollection[models.Goal](s, constants.KeyGoals)
	for i := range items {
		if items[i].ID == id {
			items[i].IsFavorite = !items[i].IsFavorite
			return writeCollection(s, constants.KeyGoals, items)
		}
	}
	return nil
}

func (s *Store) DeleteGoal(id int64) error {
	return removeRecord[models.Goal](s, constants.KeyGoals, id)
}
