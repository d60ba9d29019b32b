package models

import (
	"testing"
	"time"
)

func TestNewEntryIDMonotonic(t *testing.T) {
	prev := NewEntryID()
	for i := 0; i < 1000; i++ {
		id := NewEntryID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestNewEntryIDBumpsWithinSameMillisecond(t *testing.T) {
	frozen := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	orig := idNowFn
	idNowFn = func() time.Time { return frozen }
	defer func() { idNowFn = orig }()

	first := NewEntryID()
	second := NewEntryID()
	if second != first+1 {
		t.Errorf("same-millisecond ids = %d, %d; want consecutive", first, second)
	}
}
