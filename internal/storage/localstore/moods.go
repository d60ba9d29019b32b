package localstore

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddMoodEntry(e models.MoodEntry) error {
	return prependRecord(s, constants.KeyMoodEntries, e)
}

func (s *Store) GetMoodEntries() ([]models.MoodEntry, error) {
	return readCollection[models.MoodEntry](s, constants.KeyMoodEntries), nil
}

func (s *Store) UpdateMoodEntry(e models.MoodEntry) error {
	return replaceRecord(s, constants.KeyMoodEntries, e)
}

func (s *Store) ToggleMoodFavorite(id int64) error {
	items := readCollection[models.MoodEntry](s, constants.KeyMoodEntries)
	for i := range items {
		if items[i].ID == id {
			items[i].IsFavorite = !items[i].IsFavorite
			return writeCollection(s, constants.KeyMoodEntries, items)
		}
	}
	return nil
}

func (s *Store) DeleteMoodEntry(id int64) error {
	return removeRecord[models.MoodEntry](s, constants.KeyMoodEntries, id)
}
