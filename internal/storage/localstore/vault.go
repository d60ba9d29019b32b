package localstore

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// The vault password is a plain local gate stored at its own key. It is not a
// security boundary; entries are stored unencrypted alongside it.

func (s *Store) GetVaultPassword() (string, error) {
	password, _ := readValue[string](s, constants.KeyVaultPassword)
	return password, nil
}

func (s *Store) SetVaultPassword(password string) error {
	return writeValue(s, constants.KeyVaultPassword, password)
}

func (s *Store) AddVaultEntry(e models.VaultEntry) error {
	return prependRecord(s, constants.KeyVaultEntries, e)
}

func (s *Store) GetVaultEntries() ([]models.VaultEntry, error) {
	return readCollection[models.VaultEntry](s, constants.KeyVaultEntries), nil
}

func (s *Store) UpdateVaultEntry(e models.VaultEntry) error {
	return replaceRecord(s, constants.KeyVaultEntries, e)
}

func (s *Store) DeleteVaultEntry(id int64) error {
	return removeRecord[models.VaultEntry](s, constants.KeyVaultEntries, id)
}

func (s *Store) GetVaultCategories() ([]models.VaultCategory, error) {
	cats := readCollection[models.VaultCategory](s, constants.KeyVaultCategories)
	if cats == nil {
		cats = models.DefaultVaultCategories()
	}
	return cats, nil
}

func (s *Store) AddVaultCategory(c models.VaultCategory) error {
	cats, _ := s.GetVaultCategories()
	return writeCollection(s, constants.KeyVaultCategories, append(cats, c))
}

func (s *Store) DeleteVaultCategory(id string) error {
	cats, _ := s.GetVaultCategories()
	kept := make([]models.VaultCategory, 0, len(cats))
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
	return writeCollection(s, constants.KeyVaultCategories, kept)
}
