package localstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func moodEntry(id int64, mood int, date string) models.MoodEntry {
	return models.MoodEntry{
		ID:        id,
		Mood:      mood,
		Date:      date,
		Time:      "09:30",
		CreatedAt: time.Now(),
	}
}

func TestAddThenReload(t *testing.T) {
	store := setupTestStore(t)

	entry := models.MoodEntry{
		ID:         models.NewEntryID(),
		Mood:       4,
		Note:       "slept well",
		Activities: []string{"walk"},
		Date:       "2026-08-30",
		Time:       "08:00",
		CreatedAt:  time.Now(),
	}
	if err := store.AddMoodEntry(entry); err != nil {
		t.Fatalf("AddMoodEntry() error: %v", err)
	}

	// Simulate a reload with a fresh store over the same directory
	reloaded := New(store.GetDataPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	entries, err := reloaded.GetMoodEntries()
	if err != nil {
		t.Fatalf("GetMoodEntries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.ID != entry.ID || got.Mood != 4 || got.Note != "slept well" || got.Date != "2026-08-30" {
		t.Errorf("reloaded entry mismatch: %+v", got)
	}
	if len(got.Activities) != 1 || got.Activities[0] != "walk" {
		t.Errorf("activities not preserved: %v", got.Activities)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	store := setupTestStore(t)

	for i, id := range []int64{100, 200, 300} {
		if err := store.AddMoodEntry(moodEntry(id, i, "2026-08-30")); err != nil {
			t.Fatalf("AddMoodEntry() error: %v", err)
		}
	}

	entries, _ := store.GetMoodEntries()
	want := []int64{300, 200, 100}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %d, want %d", i, entries[i].ID, id)
		}
	}
}

func TestAddDuplicateIDRejected(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddMoodEntry(moodEntry(42, 1, "2026-08-30")); err != nil {
		t.Fatalf("AddMoodEntry() error: %v", err)
	}
	if err := store.AddMoodEntry(moodEntry(42, 2, "2026-08-30")); err == nil {
		t.Error("AddMoodEntry() with duplicate id did not fail")
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	store := setupTestStore(t)

	for i, id := range []int64{1, 2, 3, 4} {
		if err := store.AddMoodEntry(moodEntry(id, i, "2026-08-30")); err != nil {
			t.Fatalf("AddMoodEntry() error: %v", err)
		}
	}

	if err := store.DeleteMoodEntry(3); err != nil {
		t.Fatalf("DeleteMoodEntry() error: %v", err)
	}

	reloaded := New(store.GetDataPath())
	entries, _ := reloaded.GetMoodEntries()
	want := []int64{4, 2, 1}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entries[%d].ID = %d, want %d", i, entries[i].ID, id)
		}
	}
}

func TestDeleteAbsentIDIsNoop(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddMoodEntry(moodEntry(1, 3, "2026-08-30")); err != nil {
		t.Fatalf("AddMoodEntry() error: %v", err)
	}
	if err := store.DeleteMoodEntry(999); err != nil {
		t.Errorf("DeleteMoodEntry() for absent id returned error: %v", err)
	}
	entries, _ := store.GetMoodEntries()
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
}

func TestToggleFavoriteInvolution(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddMoodEntry(moodEntry(7, 3, "2026-08-30")); err != nil {
		t.Fatalf("AddMoodEntry() error: %v", err)
	}

	if err := store.ToggleMoodFavorite(7); err != nil {
		t.Fatalf("ToggleMoodFavorite() error: %v", err)
	}
	entries, _ := store.GetMoodEntries()
	if !entries[0].IsFavorite {
		t.Error("IsFavorite = false after first toggle, want true")
	}

	if err := store.ToggleMoodFavorite(7); err != nil {
		t.Fatalf("ToggleMoodFavorite() error: %v", err)
	}
	entries, _ = store.GetMoodEntries()
	if entries[0].IsFavorite {
		t.Error("IsFavorite = true after second toggle, want false")
	}
}

func TestToggleFavoriteAbsentIDIsNoop(t *testing.T) {
	store := setupTestStore(t)
	if err := store.ToggleMoodFavorite(123); err != nil {
		t.Errorf("ToggleMoodFavorite() for absent id returned error: %v", err)
	}
}

func TestUpdateReplacesWholesale(t *testing.T) {
	store := setupTestStore(t)

	original := moodEntry(10, 2, "2026-08-30")
	original.Note = "rough morning"
	if err := store.AddMoodEntry(original); err != nil {
		t.Fatalf("AddMoodEntry() error: %v", err)
	}

	updated := original
	updated.Mood = 6
	updated.Note = "better after lunch"
	if err := store.UpdateMoodEntry(updated); err != nil {
		t.Fatalf("UpdateMoodEntry() error: %v", err)
	}

	entries, _ := store.GetMoodEntries()
	if entries[0].Mood != 6 || entries[0].Note != "better after lunch" {
		t.Errorf("update not applied: %+v", entries[0])
	}

	// Absent id is a no-op
	ghost := moodEntry(999, 1, "2026-08-30")
	if err := store.UpdateMoodEntry(ghost); err != nil {
		t.Errorf("UpdateMoodEntry() for absent id returned error: %v", err)
	}
	entries, _ = store.GetMoodEntries()
	if len(entries) != 1 {
		t.Errorf("got %d entries after no-op update, want 1", len(entries))
	}
}

func TestCorruptBlobFallsBackToEmpty(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddMoodEntry(moodEntry(1, 3, "2026-08-30")); err != nil {
		t.Fatalf("AddMoodEntry() error: %v", err)
	}

	// Corrupt the blob on disk behind the store's back
	blobPath := filepath.Join(store.GetDataPath(), constants.KeyMoodEntries)
	if err := os.WriteFile(blobPath, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to corrupt blob: %v", err)
	}

	reloaded := New(store.GetDataPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() over corrupt blob returned error: %v", err)
	}
	entries, err := reloaded.GetMoodEntries()
	if err != nil {
		t.Fatalf("GetMoodEntries() over corrupt blob returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries from corrupt blob, want 0", len(entries))
	}
}

func TestGoalLifecycle(t *testing.T) {
	store := setupTestStore(t)

	goal := models.Goal{
		ID:        models.NewEntryID(),
		Title:     "Walk daily",
		CreatedAt: time.Now(),
	}
	if err := store.AddGoal(goal); err != nil {
		t.Fatalf("AddGoal() error: %v", err)
	}

	goals, _ := store.GetGoals()
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(goals))
	}
	got := goals[0]
	if got.Progress != 0 {
		t.Errorf("Progress = %d, want 0", got.Progress)
	}
	if got.Steps == nil || len(got.Steps) != 0 {
		t.Errorf("Steps = %v, want empty non-nil slice", got.Steps)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	if err := store.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("DeleteGoal() error: %v", err)
	}
	goals, _ = store.GetGoals()
	if len(goals) != 0 {
		t.Errorf("got %d goals after delete, want 0", len(goals))
	}
}

func TestTriggerCategoriesSeeded(t *testing.T) {
	store := setupTestStore(t)

	cats, err := store.GetTriggerCategories()
	if err != nil {
		t.Fatalf("GetTriggerCategories() error: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("no default trigger categories seeded")
	}

	custom := models.TriggerCategory{ID: "cat-custom", Name: "Weather", Color: "#56b6c2"}
	if err := store.AddTriggerCategory(custom); err != nil {
		t.Fatalf("AddTriggerCategory() error: %v", err)
	}
	cats, _ = store.GetTriggerCategories()
	found := false
	for _, c := range cats {
		if c.ID == "cat-custom" {
			found = true
		}
	}
	if !found {
		t.Error("custom category not persisted")
	}
}

func TestVaultPasswordGate(t *testing.T) {
	store := setupTestStore(t)

	password, err := store.GetVaultPassword()
	if err != nil {
		t.Fatalf("GetVaultPassword() error: %v", err)
	}
	if password != "" {
		t.Errorf("unset vault password = %q, want empty", password)
	}

	if err := store.SetVaultPassword("open sesame"); err != nil {
		t.Fatalf("SetVaultPassword() error: %v", err)
	}
	password, _ = store.GetVaultPassword()
	if password != "open sesame" {
		t.Errorf("vault password = %q, want %q", password, "open sesame")
	}
}

func TestCompletionCounts(t *testing.T) {
	store := setupTestStore(t)

	for i := 0; i < 3; i++ {
		if err := store.IncrementCompletionCount("tech-stop"); err != nil {
			t.Fatalf("IncrementCompletionCount() error: %v", err)
		}
	}
	if err := store.IncrementCompletionCount("tech-tipp"); err != nil {
		t.Fatalf("IncrementCompletionCount() error: %v", err)
	}

	counts, err := store.GetCompletionCounts()
	if err != nil {
		t.Fatalf("GetCompletionCounts() error: %v", err)
	}
	if counts["tech-stop"] != 3 {
		t.Errorf("counts[tech-stop] = %d, want 3", counts["tech-stop"])
	}
	if counts["tech-tipp"] != 1 {
		t.Errorf("counts[tech-tipp] = %d, want 1", counts["tech-tipp"])
	}
}

func TestTechniqueFavoriteToggle(t *testing.T) {
	store := setupTestStore(t)

	if err := store.ToggleTechniqueFavorite("tech-stop"); err != nil {
		t.Fatalf("ToggleTechniqueFavorite() error: %v", err)
	}
	favs, _ := store.GetTechniqueFavorites()
	if len(favs) != 1 || favs[0] != "tech-stop" {
		t.Errorf("favorites = %v, want [tech-stop]", favs)
	}

	if err := store.ToggleTechniqueFavorite("tech-stop"); err != nil {
		t.Fatalf("ToggleTechniqueFavorite() error: %v", err)
	}
	favs, _ = store.GetTechniqueFavorites()
	if len(favs) != 0 {
		t.Errorf("favorites = %v after second toggle, want empty", favs)
	}
}

func TestInitTwiceFails(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Init(); err == nil {
		t.Error("second Init() did not fail")
	}
}
