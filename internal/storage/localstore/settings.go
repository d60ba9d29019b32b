package localstore

import (
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	settings, ok := readValue[models.Settings](s, constants.KeySettings)
	if !ok {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	return writeValue(s, constants.KeySettings, settings)
}

func (s *Store) GetProfileSnapshot() (models.Identity, error) {
	identity, _ := readValue[models.Identity](s, constants.KeyProfileSnapshot)
	return identity, nil
}

func (s *Store) SaveProfileSnapshot(identity models.Identity) error {
	return writeValue(s, constants.KeyProfileSnapshot, identity)
}

func (s *Store) ClearProfileSnapshot() error {
	if !s.d.Has(constants.KeyProfileSnapshot) {
		return nil
	}
	return s.d.Erase(constants.KeyProfileSnapshot)
}
