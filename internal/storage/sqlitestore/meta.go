package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// Single-value records (settings, vault password, profile snapshot) live in
// the meta table keyed like the blob store's keys.

func (s *Store) getMeta(key string, out interface{}) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		logger.Warn("unreadable meta value, falling back to default", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *Store) setMeta(key string, v interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize meta value %s: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	return err
}

func (s *Store) GetSettings() (models.Settings, error) {
	var settings models.Settings
	ok, err := s.getMeta(constants.KeySettings, &settings)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	return s.setMeta(constants.KeySettings, settings)
}

func (s *Store) GetVaultPassword() (string, error) {
	var password string
	if _, err := s.getMeta(constants.KeyVaultPassword, &password); err != nil {
		return "", err
	}
	return password, nil
}

func (s *Store) SetVaultPassword(password string) error {
	return s.setMeta(constants.KeyVaultPassword, password)
}

func (s *Store) GetProfileSnapshot() (models.Identity, error) {
	var identity models.Identity
	if _, err := s.getMeta(constants.KeyProfileSnapshot, &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

func (s *Store) SaveProfileSnapshot(identity models.Identity) error {
	return s.setMeta(constants.KeyProfileSnapshot, identity)
}

func (s *Store) ClearProfileSnapshot() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM meta WHERE key = ?`, constants.KeyProfileSnapshot)
	return err
}
