package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/models"
	"github.com/mindtrackhq/mindtrack/internal/utils"
	"github.com/mindtrackhq/mindtrack/internal/validation"
)

type GoalAddCmd struct {
	Title       string   `arg:"" help:"Goal title."`
	Description string   `short:"d" help:"Longer description."`
	TargetDate  string   `short:"t" help:"Target date (YYYY-MM-DD)."`
	Steps       []string `short:"s" help:"Initial steps."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	goal := models.Goal{
		ID:          models.NewEntryID(),
		Title:       c.Title,
		Description: c.Description,
		TargetDate:  c.TargetDate,
		Steps:       []models.GoalStep{},
		CreatedAt:   time.Now(),
	}
	for _, text := range c.Steps {
		goal.Steps = append(goal.Steps, models.GoalStep{
			ID:   "step-" + uuid.NewString(),
			Text: text,
		})
	}
	if err := validation.ValidateGoal(goal); err != nil {
		return err
	}
	if err := ctx.Store.AddGoal(goal); err != nil {
		return err
	}
	fmt.Printf("Added goal %q (%d)\n", goal.Title, goal.ID)
	return nil
}

type GoalListCmd struct {
	FilterFlags
}

func (c *GoalListCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}
	visible := insights.Filter(goals, c.Query())
	if len(visible) == 0 {
		fmt.Println("No goals.")
		return nil
	}

	now := time.Now()
	for _, g := range visible {
		line := fmt.Sprintf("%s%s  %d%%", FavoriteMarker(g.IsFavorite), g.Title, g.StepProgress())
		if g.TargetDate != "" {
			if countdown, err := utils.FormatCountdown(g.TargetDate, now); err == nil {
				line += "  " + countdown
			}
		}
		if g.CompletedAt != nil {
			line += "  done " + g.CompletedAt.Format("2006-01-02")
		}
		fmt.Printf("%s  (%d)\n", line, g.ID)
		for _, s := range g.Steps {
			mark := "[ ]"
			if s.Done {
				mark = "[x]"
			}
			fmt.Printf("      %s %s  (%s)\n", mark, s.Text, s.ID)
		}
	}
	return nil
}

type GoalDoneCmd struct {
	ID int64 `arg:"" help:"Goal id to complete."`
}

func (c *GoalDoneCmd) Run(ctx *Context) error {
	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}
	for _, g := range goals {
		if g.ID != c.ID {
			continue
		}
		now := time.Now()
		g.Progress = 100
		g.CompletedAt = &now
		for i := range g.Steps {
			g.Steps[i].Done = true
		}
		if err := ctx.Store.UpdateGoal(g); err != nil {
			return err
		}
		fmt.Printf("Completed goal %q\n", g.Title)
		return nil
	}
	return fmt.Errorf("goal %d not found", c.ID)
}

type GoalStepCmd struct {
	ID     int64  `arg:"" help:"Goal id."`
	Add    string `help:"Add a step with this text."`
	Toggle string `help:"Toggle the step with this id."`
}

func (c *GoalStepCmd) Run(ctx *Context) error {
	if c.Add == "" && c.Toggle == "" {
		return fmt.Errorf("nothing to do: pass --add or --toggle")
	}
	goals, err := ctx.Store.GetGoals()
	if err != nil {
		return err
	}
	for _, g := range goals {
		if g.ID != c.ID {
			continue
		}
		if c.Add != "" {
			g.Steps = append(g.Steps, models.GoalStep{
				ID:   "step-" + uuid.NewString(),
				Text: c.Add,
			})
		}
		if c.Toggle != "" {
			found := false
			for i := range g.Steps {
				if g.Steps[i].ID == c.Toggle {
					g.Steps[i].Done = !g.Steps[i].Done
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("step %s not found on goal %d", c.Toggle, c.ID)
			}
		}
		if err := ctx.Store.UpdateGoal(g); err != nil {
			return err
		}
		fmt.Printf("Goal %q now at %d%%\n", g.Title, g.StepProgress())
		return nil
	}
	return fmt.Errorf("goal %d not found", c.ID)
}

type GoalDeleteCmd struct {
	ID int64 `arg:"" help:"Goal id to delete."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteGoal(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted goal %d\n", c.ID)
	return nil
}

type GoalFavoriteCmd struct {
	ID int64 `arg:"" help:"Goal id to toggle."`
}

func (c *GoalFavoriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.ToggleGoalFavorite(c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled favorite on goal %d\n", c.ID)
	return nil
}
