package localstore

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddExerciseHistory(e models.ExerciseHistoryEntry) error {
	return prependRecord(s, constants.KeyExerciseHistory, e)
}

func (s *Store) GetExerciseHistory() ([]models.ExerciseHistoryEntry, error) {
	return readCollection[models.ExerciseHistoryEntry](s, constants.KeyExerciseHistory), nil
}

func (s *Store) DeleteExerciseHistory(id int64) error {
	return removeRecord[models.ExerciseHistoryEntry](s, constants.KeyExerciseHistory, id)
}

func (s *Store) ToggleTechniqueFavorite(techniqueID string) error {
	favs := readCollection[string](s, constants.KeyExerciseFavorites)
	kept := make([]string, 0, len(favs))
	found := false
	for _, id := range favs {
		if id == techniqueID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		kept = append(kept, techniqueID)
	}
	return writeCollection(s, constants.KeyExerciseFavorites, kept)
}

func (s *Store) GetTechniqueFavorites() ([]string, error) {
	return readCollection[string](s, constants.KeyExerciseFavorites), nil
}

func (s *Store) IncrementCompletionCount(techniqueID string) error {
	counts, ok := readValue[map[string]int](s, constants.KeyExerciseCounts)
	if !ok || counts == nil {
		counts = make(map[string]int)
	}
	counts[techniqueID]++
	return writeValue(s, constants.KeyExerciseCounts, counts)
}

func (s *Store) GetCompletionCounts() (map[string]int, error) {
	counts, ok := readValue[map[string]int](s, constants.KeyExerciseCounts)
	if !ok || counts == nil {
		counts = make(map[string]int)
	}
	return counts, nil
}
