package tui

import (
	"testing"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/models"
	"github.com/mindtrackhq/mindtrack/internal/storage/localstore"
)

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store := localstore.New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return store
}

func TestNextTabCycles(t *testing.T) {
	state := tabOrder[0]
	for range tabOrder {
		state = nextTab(state, 1)
	}
	if state != tabOrder[0] {
		t.Errorf("cycling forward through all tabs ended on %v, want %v", state, tabOrder[0])
	}

	if got := nextTab(tabOrder[0], -1); got != tabOrder[len(tabOrder)-1] {
		t.Errorf("nextTab(first, -1) = %v, want %v", got, tabOrder[len(tabOrder)-1])
	}
}

func TestTabTitles(t *testing.T) {
	for _, state := range tabOrder {
		if tabTitle(state) == "" {
			t.Errorf("tab state %v has no title", state)
		}
	}
	if tabTitle(constants.StateAddMood) != "" {
		t.Error("non-tab state should have no title")
	}
}

func TestNewModelVaultGate(t *testing.T) {
	store := newTestStore(t)

	m := NewModel(store)
	if !m.vaultUnlocked {
		t.Error("vault should be open when no password is set")
	}

	if err := store.SetVaultPassword("open sesame"); err != nil {
		t.Fatalf("SetVaultPassword() error: %v", err)
	}
	m = NewModel(store)
	if m.vaultUnlocked {
		t.Error("vault should be locked when a password is set")
	}
}

func TestRefreshMoodsDefaultsToToday(t *testing.T) {
	store := newTestStore(t)
	today := time.Now().Format(constants.DateFormat)

	entries := []models.MoodEntry{
		{ID: 1, Mood: 4, Date: today, Time: "09:00", CreatedAt: time.Now()},
		{ID: 2, Mood: -2, Date: "2020-01-01", Time: "09:00", CreatedAt: time.Now()},
	}
	for _, e := range entries {
		if err := store.AddMoodEntry(e); err != nil {
			t.Fatalf("AddMoodEntry() error: %v", err)
		}
	}

	m := NewModel(store)
	item, ok := m.moodList.Selected()
	if !ok {
		t.Fatal("expected a visible mood entry")
	}
	if item.ID != 1 {
		t.Errorf("today view selected entry %d, want the entry dated today", item.ID)
	}

	m.moodShowAll = true
	m.refreshMoods()
	if item, ok = m.moodList.Selected(); !ok || item.ID != 1 {
		t.Fatalf("all view should keep newest-first order, got %+v ok=%v", item, ok)
	}
}

func TestRecordExerciseUpdatesCounts(t *testing.T) {
	store := newTestStore(t)
	m := NewModel(store)

	if err := m.recordExercise("tech-stop", 0, nil); err != nil {
		t.Fatalf("recordExercise() error: %v", err)
	}

	counts, err := store.GetCompletionCounts()
	if err != nil {
		t.Fatalf("GetCompletionCounts() error: %v", err)
	}
	if counts["tech-stop"] != 1 {
		t.Errorf("completion count = %d, want 1", counts["tech-stop"])
	}
	history, err := store.GetExerciseHistory()
	if err != nil {
		t.Fatalf("GetExerciseHistory() error: %v", err)
	}
	if len(history) != 1 || history[0].TechniqueID != "tech-stop" {
		t.Errorf("history = %+v, want one tech-stop entry", history)
	}
}
