package models

import "time"

// GoalStep is a sub-item of a goal, toggled done independently.
type GoalStep struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Goal tracks a longer-running intention with optional steps and a target date.
type Goal struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  string     `json:"target_date,omitempty"` // YYYY-MM-DD format
	Progress    int        `json:"progress"`              // 0-100
	Steps       []GoalStep `json:"steps"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	IsFavorite  bool       `json:"is_favorite,omitempty"`
}

func (g Goal) EntryID() int64       { return g.ID }
func (g Goal) EntryDate() string    { return g.CreatedAt.Format("2006-01-02") }
func (g Goal) Favorite() bool       { return g.IsFavorite }
func (g Goal) CategoryName() string { return "" }
func (g Goal) SearchFields() []string {
	fields := []string{g.Title, g.Description}
	for _, s := range g.Steps {
		fields = append(fields, s.Text)
	}
	return fields
}

// StepProgress returns the percentage of steps marked done, or the stored
// Progress value when the goal has no steps.
func (g Goal) StepProgress() int {
	if len(g.Steps) == 0 {
		return g.Progress
	}
	done := 0
	for _, s := range g.Steps {
		if s.Done {
			done++
		}
	}
	return done * 100 / len(g.Steps)
}
