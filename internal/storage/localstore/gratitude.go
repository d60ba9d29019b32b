package localstore

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddGratitudeEntry(e models.GratitudeEntry) error {
	return prependRecord(s, constants.KeyGratitudeEntries, e)
}

func (s *Store) GetGratitudeEntries() ([]models.GratitudeEntry, error) {
	return readCollection[models.GratitudeEntry](s, constants.KeyGratitudeEntries), nil
}

func (s *Store) ToggleGratitudeFavorite(id int64) error {
	items := readCollection[models.GratitudeEntry](s, constants.KeyGratitudeEntries)
	for i := range items {
		if items[i].ID == id {
			items[i].IsFavorite = !items[i].IsFavorite
			return writeCollection(s, constants.KeyGratitudeEntries, items)
		}
	}
	return nil
}

func (s *Store) DeleteGratitudeEntry(id int64) error {
	return removeRecord[models.GratitudeEntry](s, constants.KeyGratitudeEntries, id)
}
