package exercise

import "github.com/mindtrackhq/mindtrack/internal/constants"

// RelaxPhase is the progressive relaxation machine state.
type RelaxPhase int

const (
	RelaxIdle RelaxPhase = iota
	RelaxTensing
	RelaxReleasing
	RelaxComplete
)

func (p RelaxPhase) String() string {
	switch p {
	case RelaxTensing:
		return "tensing"
	case RelaxReleasing:
		return "relaxing"
	case RelaxComplete:
		return "complete"
	default:
		return "idle"
	}
}

// RelaxResult is emitted when a relaxation session finishes.
type RelaxResult struct {
	Completed      map[string]bool
	SessionSeconds int
}

// Relaxation walks a fixed muscle-group sequence through tense and release
// phases. The per-group timer resets on every phase change; the session clock
// runs from start to finish.
type Relaxation struct {
	groups         []MuscleGroup
	phase          RelaxPhase
	index          int
	phaseSeconds   int
	sessionSeconds int
	completed      map[string]bool
}

// NewRelaxation builds an idle machine over the given group sequence.
func NewRelaxation(groups []MuscleGroup) *Relaxation {
	return &Relaxation{
		groups:    groups,
		completed: make(map[string]bool),
	}
}

func (r *Relaxation) Phase() RelaxPhase   { return r.phase }
func (r *Relaxation) Index() int          { return r.index }
func (r *Relaxation) PhaseSeconds() int   { return r.phaseSeconds }
func (r *Relaxation) SessionSeconds() int { return r.sessionSeconds }
func (r *Relaxation) GroupCount() int     { return len(r.groups) }
func (r *Relaxation) CompletedCount() int { return len(r.completed) }

// Group returns the muscle group currently being worked.
func (r *Relaxation) Group() (MuscleGroup, bool) {
	if r.index < 0 || r.index >= len(r.groups) {
		return MuscleGroup{}, false
	}
	return r.groups[r.index], true
}

// Start moves an idle machine into the first tensing phase. A no-op in any
// other phase.
func (r *Relaxation) Start() {
	if r.phase != RelaxIdle || len(r.groups) == 0 {
		return
	}
	r.phase = RelaxTensing
	r.phaseSeconds = 0
}

// Tick advances both clocks by one second and fires the phase auto-transitions.
// A no-op while idle or complete.
func (r *Relaxation) Tick() {
	if r.phase != RelaxTensing && r.phase != RelaxReleasing {
		return
	}
	r.sessionSeconds++
	r.phaseSeconds++

	switch r.phase {
	case RelaxTensing:
		if r.phaseSeconds >= constants.RelaxTenseSeconds {
			r.Relax()
		}
	case RelaxReleasing:
		if r.phaseSeconds >= constants.RelaxReleaseSeconds {
			r.CompleteGroup()
		}
	}
}

// Relax switches from tensing to releasing, resetting the per-group timer.
// Callable early by the user; a no-op outside the tensing phase.
func (r *Relaxation) Relax() {
	if r.phase != RelaxTensing {
		return
	}
	r.phase = RelaxReleasing
	r.phaseSeconds = 0
}

// CompleteGroup marks the current group done and advances, entering the next
// group's tensing phase or the terminal complete phase after the last group.
// Callable early by the user; a no-op outside the releasing phase.
func (r *Relaxation) CompleteGroup() {
	if r.phase != RelaxReleasing {
		return
	}
	if g, ok := r.Group(); ok {
		r.completed[g.ID] = true
	}
	r.index++
	r.phaseSeconds = 0
	if r.index >= len(r.groups) {
		r.phase = RelaxComplete
		return
	}
	r.phase = RelaxTensing
}

// Reset returns the machine to idle, clearing completion marks and all clocks.
func (r *Relaxation) Reset() {
	r.phase = RelaxIdle
	r.index = 0
	r.phaseSeconds = 0
	r.sessionSeconds = 0
	r.completed = make(map[string]bool)
}

// Finish emits the session result and resets the machine.
func (r *Relaxation) Finish() RelaxResult {
	result := RelaxResult{
		Completed:      r.completed,
		SessionSeconds: r.sessionSeconds,
	}
	r.completed = make(map[string]bool)
	r.Reset()
	return result
}
