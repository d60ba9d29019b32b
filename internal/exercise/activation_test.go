package exercise

import (
	"testing"
	"time"
)

func TestActivationLifecycle(t *testing.T) {
	a := NewActivation()
	a.nowFn = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) }

	id := a.Add("Morning walk")
	acts := a.Activities()
	if len(acts) != 1 || acts[0].State != ActivityPending {
		t.Fatalf("after Add: %+v", acts)
	}

	a.MarkDone(id)
	if a.Activities()[0].State != ActivityCompleting {
		t.Fatalf("after MarkDone, state = %v", a.Activities()[0].State)
	}
	if a.CanFinalize() {
		t.Error("completing activity must not satisfy the finalize gate")
	}

	a.SubmitMoods(id, 3, 7)
	got := a.Activities()[0]
	if got.State != ActivityCompleted || got.MoodBefore != 3 || got.MoodAfter != 7 {
		t.Fatalf("after SubmitMoods: %+v", got)
	}
	if got.CompletedAt.IsZero() {
		t.Error("completion not timestamped")
	}
	if !a.CanFinalize() {
		t.Error("completed activity must satisfy the finalize gate")
	}
}

func TestActivationOutOfOrderCallsAreNoops(t *testing.T) {
	a := NewActivation()
	id := a.Add("Call a friend")

	// Moods cannot be submitted before the activity is marked done
	a.SubmitMoods(id, 2, 5)
	if a.Activities()[0].State != ActivityPending {
		t.Errorf("SubmitMoods on pending activity moved state")
	}

	a.MarkDone(id)
	a.MarkDone(id) // repeated MarkDone
	if a.Activities()[0].State != ActivityCompleting {
		t.Errorf("repeated MarkDone moved state")
	}

	a.SubmitMoods(id, 2, 5)
	a.MarkDone(id) // completed activities do not return to completing
	if a.Activities()[0].State != ActivityCompleted {
		t.Errorf("MarkDone on completed activity moved state")
	}

	// Absent ids are no-ops everywhere
	a.MarkDone(9999)
	a.SubmitMoods(9999, 1, 1)
	a.Delete(9999)
	if len(a.Activities()) != 1 {
		t.Errorf("absent-id calls changed the activity list")
	}
}

func TestActivationDeleteFromAnyState(t *testing.T) {
	a := NewActivation()
	pending := a.Add("Read")
	completing := a.Add("Cook dinner")
	completed := a.Add("Stretch")

	a.MarkDone(completing)
	a.MarkDone(completed)
	a.SubmitMoods(completed, 4, 6)

	a.Delete(pending)
	a.Delete(completing)
	a.Delete(completed)
	if len(a.Activities()) != 0 {
		t.Errorf("activities remain after delete: %+v", a.Activities())
	}
	if a.CanFinalize() {
		t.Error("finalize gate open with no activities")
	}
}

func TestActivationCompletedSubset(t *testing.T) {
	a := NewActivation()
	first := a.Add("Shower")
	a.Add("Tidy desk")
	second := a.Add("Water plants")

	a.MarkDone(first)
	a.SubmitMoods(first, 2, 4)
	a.MarkDone(second)
	a.SubmitMoods(second, 5, 6)

	done := a.Completed()
	if len(done) != 2 {
		t.Fatalf("got %d completed, want 2", len(done))
	}
	if done[0].ID != first || done[1].ID != second {
		t.Errorf("completed order not preserved: %+v", done)
	}
}

func TestTechniqueCatalogueLookup(t *testing.T) {
	if _, ok := TechniqueByID("tech-stop"); !ok {
		t.Error("tech-stop missing from catalogue")
	}
	if _, ok := TechniqueByID("tech-unknown"); ok {
		t.Error("lookup of unknown id succeeded")
	}

	seen := make(map[string]bool)
	for _, tech := range Techniques() {
		if tech.ID == "" || tech.Name == "" || tech.Summary == "" {
			t.Errorf("incomplete technique: %+v", tech)
		}
		if seen[tech.ID] {
			t.Errorf("duplicate technique id %q", tech.ID)
		}
		seen[tech.ID] = true
	}
}
