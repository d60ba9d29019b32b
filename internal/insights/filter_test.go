package insights

import (
	"testing"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

func triggerEntry(id int64, desc, category, coping, date string, favorite bool) models.TriggerEntry {
	return models.TriggerEntry{
		ID:             id,
		Description:    desc,
		Category:       category,
		CopingStrategy: coping,
		Intensity:      5,
		Date:           date,
		IsFavorite:     favorite,
	}
}

func TestFavoritesOnlyFilter(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "loud open office", "Work", "", "2026-08-28", true),
		triggerEntry(2, "missed bus", "Other", "", "2026-08-28", false),
		triggerEntry(3, "argument", "Family", "", "2026-08-29", true),
	}

	got := Filter(entries, Query{FavoritesOnly: true})
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("order not preserved: %d, %d", got[0].ID, got[1].ID)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "Loud open office", "", "went for a WALK", "2026-08-28", false),
		triggerEntry(2, "missed bus", "", "", "2026-08-28", false),
	}

	tests := []struct {
		search string
		want   []int64
	}{
		{"LOUD", []int64{1}},
		{"walk", []int64{1}},
		{"bus", []int64{2}},
		{"office", []int64{1}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := Filter(entries, Query{Search: tt.search})
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestCategoryEquality(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "deadline", "Work", "", "2026-08-28", false),
		triggerEntry(2, "crowded train", "Social", "", "2026-08-28", false),
	}

	got := Filter(entries, Query{Category: "Work"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("category filter returned %v", got)
	}
}

func TestDateRangeInclusiveBounds(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "a", "", "", "2026-08-01", false),
		triggerEntry(2, "b", "", "", "2026-08-15", false),
		triggerEntry(3, "c", "", "", "2026-08-31", false),
		triggerEntry(4, "d", "", "", "2026-09-01", false),
	}

	got := Filter(entries, Query{From: "2026-08-01", To: "2026-08-31"})
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3 (both bounds inclusive)", len(got))
	}
	if got[0].ID != 1 || got[2].ID != 3 {
		t.Errorf("boundary records missing: %v", got)
	}

	// Absent bound is unbounded on that side
	got = Filter(entries, Query{From: "2026-08-16"})
	if len(got) != 2 {
		t.Errorf("open-ended range returned %d entries, want 2", len(got))
	}
}

func TestPredicatesCompose(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "deadline pressure", "Work", "", "2026-08-28", true),
		triggerEntry(2, "deadline pressure", "Work", "", "2026-08-28", false),
		triggerEntry(3, "deadline pressure", "Family", "", "2026-08-28", true),
	}

	got := Filter(entries, Query{FavoritesOnly: true, Category: "Work", Search: "deadline"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("composed filter returned %v", got)
	}
}

func TestMoodDefaultScopeIsToday(t *testing.T) {
	entries := []models.MoodEntry{
		{ID: 1, Mood: 3, Date: "2026-08-30"},
		{ID: 2, Mood: 1, Date: "2026-08-29"},
		{ID: 3, Mood: -2, Date: "2026-08-30"},
	}

	got := VisibleMoodEntries(entries, Query{}, "2026-08-30")
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2 (today only)", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("wrong entries visible: %v", got)
	}

	// Any explicit filter overrides the today-only default
	got = VisibleMoodEntries(entries, Query{From: "2026-08-01"}, "2026-08-30")
	if len(got) != 3 {
		t.Errorf("explicit filter returned %d entries, want 3", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	entries := []models.TriggerEntry{
		triggerEntry(1, "a", "", "", "2026-08-28", false),
		triggerEntry(2, "b", "", "", "2026-08-28", true),
	}

	_ = Filter(entries, Query{FavoritesOnly: true})
	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Error("input slice mutated")
	}
}
