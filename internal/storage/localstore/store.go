package localstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

// Store persists each collection as one JSON blob under its own key. Keys map
// directly to files in the data directory.
//
// Concurrency note:
//   - Store is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple mindtrack processes against the same data directory is
//     not supported; the lockfile check in cmd guards against it.
type Store struct {
	path string
	d    *diskv.Diskv
}

func New(dataPath string) *Store {
	return &Store{
		path: dataPath,
		d: diskv.New(diskv.Options{
			BasePath: dataPath,
			// Flat layout: every key is a file directly under the data dir
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

func (s *Store) Init() error {
	if err := os.MkdirAll(s.path, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if s.d.Has(constants.KeySettings) {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.SaveSettings(models.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}
	if err := writeCollection(s, constants.KeyTriggerCategories, models.DefaultTriggerCategories()); err != nil {
		return fmt.Errorf("failed to seed trigger categories: %w", err)
	}
	if err := writeCollection(s, constants.KeyVaultCategories, models.DefaultVaultCategories()); err != nil {
		return fmt.Errorf("failed to seed vault categories: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'mindtrack init' first")
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) GetDataPath() string {
	return s.path
}

// keyPath returns the file backing a collection key; used by backups.
func (s *Store) keyPath(key string) string {
	return filepath.Join(s.path, key)
}
