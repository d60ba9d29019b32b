package exercise

import (
	"time"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// ActivityState is the behavioral activation per-activity state.
type ActivityState int

const (
	ActivityPending ActivityState = iota
	ActivityCompleting
	ActivityCompleted
)

func (s ActivityState) String() string {
	switch s {
	case ActivityCompleting:
		return "completing"
	case ActivityCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// Activity is one planned activity in a behavioral activation session.
type Activity struct {
	ID          int64
	Title       string
	State       ActivityState
	MoodBefore  int
	MoodAfter   int
	CompletedAt time.Time
}

// Activation tracks a behavioral activation session's activity list. Each
// activity moves Pending to Completing when marked done, then Completed once
// mood-before and mood-after ratings are submitted.
type Activation struct {
	activities []Activity
	nowFn      func() time.Time
}

func NewActivation() *Activation {
	return &Activation{nowFn: time.Now}
}

// Activities returns the session's activities in insertion order.
func (a *Activation) Activities() []Activity {
	return a.activities
}

// Add appends a pending activity and returns its id.
func (a *Activation) Add(title string) int64 {
	act := Activity{
		ID:    models.NewEntryID(),
		Title: title,
		State: ActivityPending,
	}
	a.activities = append(a.activities, act)
	return act.ID
}

// MarkDone moves a pending activity into the completing state, where mood
// ratings are captured. A no-op for absent ids or any other state.
func (a *Activation) MarkDone(id int64) {
	for i := range a.activities {
		if a.activities[i].ID == id && a.activities[i].State == ActivityPending {
			a.activities[i].State = ActivityCompleting
			return
		}
	}
}

// SubmitMoods attaches the before/after ratings to a completing activity and
// timestamps its completion. A no-op for absent ids or any other state.
func (a *Activation) SubmitMoods(id int64, before, after int) {
	for i := range a.activities {
		if a.activities[i].ID == id && a.activities[i].State == ActivityCompleting {
			a.activities[i].MoodBefore = before
			a.activities[i].MoodAfter = after
			a.activities[i].State = ActivityCompleted
			a.activities[i].CompletedAt = a.nowFn()
			return
		}
	}
}

// Delete removes an activity in any state. Absent ids are a no-op.
func (a *Activation) Delete(id int64) {
	for i := range a.activities {
		if a.activities[i].ID == id {
			a.activities = append(a.activities[:i], a.activities[i+1:]...)
			return
		}
	}
}

// CanFinalize reports whether the session has at least one completed activity.
func (a *Activation) CanFinalize() bool {
	for _, act := range a.activities {
		if act.State == ActivityCompleted {
			return true
		}
	}
	return false
}

// Completed returns the completed activities in insertion order.
func (a *Activation) Completed() []Activity {
	var done []Activity
	for _, act := range a.activities {
		if act.State == ActivityCompleted {
			done = append(done, act)
		}
	}
	return done
}
