package entrylist

import "testing"

func TestItemFilterValue(t *testing.T) {
	withKeywords := Item{Heading: "Deadline", Keywords: "deadline work boss"}
	if got := withKeywords.FilterValue(); got != "deadline work boss" {
		t.Errorf("FilterValue() = %q, want keywords", got)
	}

	plain := Item{Heading: "Deadline"}
	if got := plain.FilterValue(); got != "Deadline" {
		t.Errorf("FilterValue() = %q, want heading fallback", got)
	}
}

func TestSelectedTracksItems(t *testing.T) {
	m := New("Test", 40, 20)

	if _, ok := m.Selected(); ok {
		t.Error("empty list should have no selection")
	}

	m.SetItems([]Item{
		{ID: 10, Heading: "first"},
		{ID: 20, Heading: "second"},
	})
	item, ok := m.Selected()
	if !ok {
		t.Fatal("expected a selection after SetItems")
	}
	if item.ID != 10 {
		t.Errorf("Selected().ID = %d, want the first item", item.ID)
	}
}
