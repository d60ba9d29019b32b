package localstore

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) AddTriggerEntry(e models.TriggerEntry) error {
	return prependRecord(s, constants.KeyTriggerEntries, e)
}

func (s *Store) GetTriggerEntries() ([]models.TriggerEntry, error) {
	return readCollection[models.TriggerEntry](s, constants.KeyTriggerEntries), nil
}

func (s *Store) UpdateTriggerEntry(e models.TriggerEntry) error {
	return replaceRecord(s, constants.KeyTriggerEntries, e)
}

func (s *Store) ToggleTriggerFavorite(id int64) error {
	items := readCollection[models.TriggerEntry](s, constants.KeyTriggerEntries)
	for i := range items {
		if items[i].ID == id {
			items[i].IsFavorite = !items[i].IsFavorite
			return writeCollection(s, constants.KeyTriggerEntries, items)
		}
	}
	return nil
}

func (s *Store) DeleteTriggerEntry(id int64) error {
	return removeRecord[models.TriggerEntry](s, constants.KeyTriggerEntries, id)
}

// Categories are seeded with defaults on Init. Entries reference categories by
// name; deleting or renaming a category leaves existing entries untouched.

func (s *Store) GetTriggerCategories() ([]models.TriggerCategory, error) {
	cats := readCollection[models.TriggerCategory](s, constants.KeyTriggerCategories)
	if cats == nil {
		cats = models.DefaultTriggerCategories()
	}
	return cats, nil
}

func (s *Store) AddTriggerCategory(c models.TriggerCategory) error {
	cats, _ := s.GetTriggerCategories()
	return writeCollection(s, constants.KeyTriggerCategories, append(cats, c))
}

func (s *Store) UpdateTriggerCategory(c models.TriggerCategory) error {
	cats, _ := s.GetTriggerCategories()
	for i := range cats {
		if cats[i].ID == c.ID {
			cats[i] = c
			return writeCollection(s, constants.KeyTriggerCategories, cats)
		}
	}
	return nil
}

func (s *Store) DeleteTriggerCategory(id string) error {
	cats, _ := s.GetTriggerCategories()
	kept := make([]models.TriggerCategory, 0, len(cats))
	removed := false
	for _, c := range cats {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return nil
	}
	return writeCollection(s, constants.KeyTriggerCategories, kept)
}
