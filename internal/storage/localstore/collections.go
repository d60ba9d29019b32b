package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/mindtrackhq/mindtrack/internal/logger"
)

// record is implemented by every tracked entry type.
type record interface {
	EntryID() int64
}

// readCollection reads the blob at key. An absent key yields the empty
// collection; an unparseable blob is logged and also yields the empty
// collection. It never returns an error to the caller.
func readCollection[T any](s *Store, key string) []T {
	data, err := s.d.Read(key)
	if err != nil {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("unreadable collection, falling back to empty", "key", key, "error", err)
		return nil
	}
	return items
}

// writeCollection serializes the entire collection and overwrites the blob at
// key. There is no incremental persistence.
func writeCollection[T any](s *Store, key string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", key, err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}

// prependRecord adds a new record at the head of the collection. Ids must be
// unique within a collection.
func prependRecord[T record](s *Store, key string, item T) error {
	items := readCollection[T](s, key)
	for _, existing := range items {
		if existing.EntryID() == item.EntryID() {
			return fmt.Errorf("duplicate id %d in collection %s", item.EntryID(), key)
		}
	}
	return writeCollection(s, key, append([]T{item}, items...))
}

// replaceRecord replaces the record with a matching id wholesale. Absent ids
// are a no-op.
func replaceRecord[T record](s *Store, key string, item T) error {
	items := readCollection[T](s, key)
	for i := range items {
		if items[i].EntryID() == item.EntryID() {
			items[i] = item
			return writeCollection(s, key, items)
		}
	}
	return nil
}

// removeRecord removes the record with the given id, preserving the order of
// the remaining records. Absent ids are a no-op.
func removeRecord[T record](s *Store, key string, id int64) error {
	items := readCollection[T](s, key)
	kept := make([]T, 0, len(items))
	removed := false
	for _, item := range items {
		if item.EntryID() == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil
	}
	return writeCollection(s, key, kept)
}

// readValue reads a single non-collection value (settings, vault password).
func readValue[T any](s *Store, key string) (T, bool) {
	var zero T
	data, err := s.d.Read(key)
	if err != nil {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("unreadable value, falling back to default", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

// writeValue overwrites a single non-collection value.
func writeValue[T any](s *Store, key string, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize value %s: %w", key, err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write value %s: %w", key, err)
	}
	return nil
}
