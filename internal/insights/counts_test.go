package insights

import (
	"testing"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func TestCategoryCountsRankedDescending(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "a", "Work", "", "2026-08-28", false),
		triggerEntry(2, "b", "Social", "", "2026-08-28", false),
		triggerEntry(3, "c", "Work", "", "2026-08-28", false),
		triggerEntry(4, "d", "", "", "2026-08-28", false),
	}

	got := CategoryCounts(entries)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2 (uncategorized skipped)", len(got))
	}
	if got[0].Key != "Work" || got[0].Count != 2 {
		t.Errorf("got[0] = %+v, want Work:2", got[0])
	}
	if got[1].Key != "Social" || got[1].Count != 1 {
		t.Errorf("got[1] = %+v, want Social:1", got[1])
	}
}

func TestCountTiesKeepFirstEncounteredOrder(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "a", "Social", "", "2026-08-28", false),
		triggerEntry(2, "b", "Work", "", "2026-08-28", false),
		triggerEntry(3, "c", "Family", "", "2026-08-28", false),
	}

	got := CategoryCounts(entries)
	want := []string{"Social", "Work", "Family"}
	for i, key := range want {
		if got[i].Key != key {
			t.Errorf("got[%d].Key = %q, want %q", i, got[i].Key, key)
		}
	}
}

func TestCopingStrategyCounts(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "a", "", "deep breathing", "2026-08-28", false),
		triggerEntry(2, "b", "", "walk", "2026-08-28", false),
		triggerEntry(3, "c", "", "deep breathing", "2026-08-28", false),
		triggerEntry(4, "d", "", "", "2026-08-28", false),
	}

	got := CopingStrategyCounts(entries)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].Key != "deep breathing" || got[0].Count != 2 {
		t.Errorf("got[0] = %+v, want deep breathing:2", got[0])
	}
}
