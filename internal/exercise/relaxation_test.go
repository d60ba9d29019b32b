package exercise

import "testing"

func testGroups() []MuscleGroup {
	return []MuscleGroup{
		{ID: "grp-hands", Name: "Hands"},
		{ID: "grp-arms", Name: "Arms"},
	}
}

func tick(r *Relaxation, n int) {
	for i := 0; i < n; i++ {
		r.Tick()
	}
}

func TestRelaxationTimerScenario(t *testing.T) {
	r := NewRelaxation(testGroups())
	r.Start()
	if r.Phase() != RelaxTensing {
		t.Fatalf("after Start, phase = %v, want tensing", r.Phase())
	}

	tick(r, 10)
	if r.Phase() != RelaxReleasing {
		t.Fatalf("after 10s of tensing, phase = %v, want relaxing", r.Phase())
	}

	tick(r, 15)
	if r.Phase() != RelaxTensing {
		t.Fatalf("after 15s of relaxing, phase = %v, want tensing next group", r.Phase())
	}
	if r.Index() != 1 {
		t.Errorf("index = %d, want 1", r.Index())
	}
	if r.CompletedCount() != 1 {
		t.Errorf("completed count = %d, want 1", r.CompletedCount())
	}

	// Second and final group
	tick(r, 10)
	tick(r, 15)
	if r.Phase() != RelaxComplete {
		t.Fatalf("after last group, phase = %v, want complete", r.Phase())
	}
}

func TestRelaxationSessionClockSpansGroupResets(t *testing.T) {
	r := NewRelaxation(testGroups())
	r.Start()
	tick(r, 10)
	tick(r, 15)
	if r.PhaseSeconds() != 0 {
		t.Errorf("phase timer = %d, want 0 after group transition", r.PhaseSeconds())
	}
	if r.SessionSeconds() != 25 {
		t.Errorf("session clock = %d, want 25", r.SessionSeconds())
	}
}

func TestRelaxationManualEarlyTransitions(t *testing.T) {
	r := NewRelaxation(testGroups())
	r.Start()
	tick(r, 3)

	r.Relax()
	if r.Phase() != RelaxReleasing || r.PhaseSeconds() != 0 {
		t.Fatalf("early Relax: phase = %v, timer = %d", r.Phase(), r.PhaseSeconds())
	}

	r.CompleteGroup()
	if r.Phase() != RelaxTensing || r.Index() != 1 {
		t.Fatalf("early CompleteGroup: phase = %v, index = %d", r.Phase(), r.Index())
	}
}

func TestRelaxationInvalidTransitionsAreNoops(t *testing.T) {
	r := NewRelaxation(testGroups())

	// Everything before Start is a no-op
	r.Tick()
	r.Relax()
	r.CompleteGroup()
	if r.Phase() != RelaxIdle || r.SessionSeconds() != 0 {
		t.Fatalf("idle machine moved: phase = %v", r.Phase())
	}

	r.Start()
	r.Start() // repeated Start does not reset the phase timer
	tick(r, 4)
	r.CompleteGroup() // not valid while tensing
	if r.Phase() != RelaxTensing || r.Index() != 0 {
		t.Errorf("CompleteGroup while tensing moved the machine")
	}

	r.Relax()
	r.Relax() // not valid while relaxing
	if r.Phase() != RelaxReleasing {
		t.Errorf("double Relax moved the machine")
	}
}

func TestRelaxationResetClearsEverything(t *testing.T) {
	r := NewRelaxation(testGroups())
	r.Start()
	tick(r, 10)
	tick(r, 15)

	r.Reset()
	if r.Phase() != RelaxIdle || r.Index() != 0 || r.SessionSeconds() != 0 || r.CompletedCount() != 0 {
		t.Errorf("Reset left state behind: phase=%v index=%d session=%d completed=%d",
			r.Phase(), r.Index(), r.SessionSeconds(), r.CompletedCount())
	}

	// Machine is usable again after reset
	r.Start()
	if r.Phase() != RelaxTensing {
		t.Errorf("machine not restartable after Reset")
	}
}

func TestRelaxationFinishEmitsResult(t *testing.T) {
	r := NewRelaxation(testGroups())
	r.Start()
	tick(r, 10)
	tick(r, 15)
	tick(r, 10)
	tick(r, 15)

	result := r.Finish()
	if result.SessionSeconds != 50 {
		t.Errorf("result session seconds = %d, want 50", result.SessionSeconds)
	}
	if !result.Completed["grp-hands"] || !result.Completed["grp-arms"] {
		t.Errorf("result missing completed groups: %v", result.Completed)
	}
	if r.Phase() != RelaxIdle {
		t.Errorf("machine not reset after Finish")
	}
}

func TestRelaxationEmptyGroupsCannotStart(t *testing.T) {
	r := NewRelaxation(nil)
	r.Start()
	if r.Phase() != RelaxIdle {
		t.Errorf("empty sequence started: phase = %v", r.Phase())
	}
}

func TestMuscleGroupCatalogue(t *testing.T) {
	groups := MuscleGroups()
	if len(groups) != 10 {
		t.Fatalf("got %d groups, want 10", len(groups))
	}
	seen := make(map[string]bool)
	for _, g := range groups {
		if g.ID == "" || g.Name == "" || g.Cue == "" {
			t.Errorf("incomplete group: %+v", g)
		}
		if seen[g.ID] {
			t.Errorf("duplicate group id %q", g.ID)
		}
		seen[g.ID] = true
	}
}
