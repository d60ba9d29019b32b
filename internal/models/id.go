package models

import (
	"sync"
	"time"
)

var (
	idMu    sync.Mutex
	lastID  int64
	idNowFn = time.Now
)

// NewEntryID returns a millisecond-timestamp id, bumped past the previous id
// when two entries are created within the same millisecond. Ids are unique for
// the lifetime of the process.
func NewEntryID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := idNowFn().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
