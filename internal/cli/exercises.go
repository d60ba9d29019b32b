package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/exercise"
	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/models"
)

type ExerciseRelaxCmd struct {
	Groups int `short:"g" help:"Limit the session to the first N muscle groups." default:"0"`
}

func (c *ExerciseRelaxCmd) Run(ctx *Context) error {
	groups := exercise.MuscleGroups()
	if c.Groups > 0 && c.Groups < len(groups) {
		groups = groups[:c.Groups]
	}

	machine := exercise.NewRelaxation(groups)
	machine.Start()
	fmt.Println("Progressive muscle relaxation. Follow each cue; Ctrl+C to cancel.")

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastPhase := exercise.RelaxIdle
	lastIndex := -1
	for machine.Phase() != exercise.RelaxComplete {
		if machine.Phase() != lastPhase || machine.Index() != lastIndex {
			lastPhase, lastIndex = machine.Phase(), machine.Index()
			if group, ok := machine.Group(); ok {
				switch machine.Phase() {
				case exercise.RelaxTensing:
					fmt.Printf("\n%s: %s (hold %ds)\n", group.Name, group.Cue, constants.RelaxTenseSeconds)
				case exercise.RelaxReleasing:
					fmt.Printf("%s: release and notice the difference (%ds)\n", group.Name, constants.RelaxReleaseSeconds)
				}
			}
		}
		<-ticker.C
		machine.Tick()
	}

	result := machine.Finish()
	fmt.Printf("\nDone. %d groups in %ds.\n", len(result.Completed), result.SessionSeconds)
	return recordCompletion(ctx, "tech-relaxation", result.SessionSeconds, nil)
}

type ExerciseActivateCmd struct{}

func (c *ExerciseActivateCmd) Run(ctx *Context) error {
	session := exercise.NewActivation()

	for {
		var title string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Description("Leave empty to stop adding.").
				Value(&title),
		)).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if strings.TrimSpace(title) == "" {
			break
		}
		session.Add(strings.TrimSpace(title))
	}
	if len(session.Activities()) == 0 {
		fmt.Println("No activities planned.")
		return nil
	}

	for _, activity := range session.Activities() {
		done := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Did you do %q?", activity.Title)).
				Value(&done),
		)).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		if !done {
			continue
		}
		session.MarkDone(activity.ID)

		var before, after string
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Mood before (1-10)").
				Value(&before).
				Validate(validateRating),
			huh.NewInput().
				Title("Mood after (1-10)").
				Value(&after).
				Validate(validateRating),
		)).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
		b, _ := strconv.Atoi(before)
		a, _ := strconv.Atoi(after)
		session.SubmitMoods(activity.ID, b, a)
	}

	if !session.CanFinalize() {
		fmt.Println("No completed activities; nothing recorded.")
		return nil
	}
	for _, activity := range session.Completed() {
		err := recordCompletion(ctx, "tech-activation", 0, map[string]int{
			"mood_before": activity.MoodBefore,
			"mood_after":  activity.MoodAfter,
		})
		if err != nil {
			return err
		}
	}
	fmt.Printf("Recorded %d completed activities.\n", len(session.Completed()))
	return nil
}

type ExerciseListCmd struct{}

func (c *ExerciseListCmd) Run(ctx *Context) error {
	favorites, err := ctx.Store.GetTechniqueFavorites()
	if err != nil {
		return err
	}
	counts, err := ctx.Store.GetCompletionCounts()
	if err != nil {
		return err
	}
	favoriteSet := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		favoriteSet[id] = true
	}

	for _, tech := range exercise.Techniques() {
		line := fmt.Sprintf("%s%-28s [%s]  %s", FavoriteMarker(favoriteSet[tech.ID]), tech.Name, tech.Kind, tech.Summary)
		if n := counts[tech.ID]; n > 0 {
			line += fmt.Sprintf("  (completed %d)", n)
		}
		fmt.Printf("%s  %s\n", line, tech.ID)
	}
	return nil
}

type ExerciseFavoriteCmd struct {
	TechniqueID string `arg:"" help:"Technique id to toggle."`
}

func (c *ExerciseFavoriteCmd) Run(ctx *Context) error {
	if _, ok := exercise.TechniqueByID(c.TechniqueID); !ok {
		return fmt.Errorf("unknown technique %q", c.TechniqueID)
	}
	if err := ctx.Store.ToggleTechniqueFavorite(c.TechniqueID); err != nil {
		return err
	}
	fmt.Printf("Toggled favorite on %s\n", c.TechniqueID)
	return nil
}

type ExerciseHistoryCmd struct {
	FilterFlags
}

func (c *ExerciseHistoryCmd) Run(ctx *Context) error {
	history, err := ctx.Store.GetExerciseHistory()
	if err != nil {
		return err
	}
	history = insights.Filter(history, c.Query())
	if len(history) == 0 {
		fmt.Println("No exercise history.")
		return nil
	}
	for _, e := range history {
		name := e.TechniqueID
		if tech, ok := exercise.TechniqueByID(e.TechniqueID); ok {
			name = tech.Name
		}
		line := fmt.Sprintf("%s  %s", e.Date, name)
		if e.Duration > 0 {
			line += fmt.Sprintf("  %ds", e.Duration)
		}
		if before, ok := e.Extra["mood_before"]; ok {
			line += fmt.Sprintf("  mood %d→%d", before, e.Extra["mood_after"])
		}
		fmt.Printf("%s  (%d)\n", line, e.ID)
	}
	return nil
}

func recordCompletion(ctx *Context, techniqueID string, durationSec int, extra map[string]int) error {
	entry := models.ExerciseHistoryEntry{
		ID:          models.NewEntryID(),
		TechniqueID: techniqueID,
		Date:        ctx.Today(),
		Duration:    durationSec,
		Extra:       extra,
		CreatedAt:   time.Now(),
	}
	if err := ctx.Store.AddExerciseHistory(entry); err != nil {
		return err
	}
	return ctx.Store.IncrementCompletionCount(techniqueID)
}

func validateRating(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 1 || n > 10 {
		return fmt.Errorf("rating must be 1-10")
	}
	return nil
}
