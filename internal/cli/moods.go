package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/models"
	"github.com/mindtrackhq/mindtrack/internal/validation"
)

type MoodAddCmd struct {
	Mood       int      `arg:"" help:"Mood value (-10 to 10)."`
	Note       string   `short:"n" help:"Free-text note."`
	Activities []string `short:"a" help:"Activities around the check-in."`
	Date       string   `help:"Override entry date (YYYY-MM-DD)."`
	Time       string   `help:"Override entry time (HH:MM)."`
}

func (c *MoodAddCmd) Run(ctx *Context) error {
	now := time.Now()
	entry := models.MoodEntry{
		ID:         models.NewEntryID(),
		Mood:       c.Mood,
		Note:       c.Note,
		Activities: c.Activities,
		Date:       c.Date,
		Time:       c.Time,
		CreatedAt:  now,
	}
	if entry.Date == "" {
		entry.Date = ctx.Today()
	}
	if entry.Time == "" {
		entry.Time = now.Format(constants.TimeFormat)
	}
	if err := validation.ValidateMoodEntry(entry); err != nil {
		return err
	}
	if err := ctx.Store.AddMoodEntry(entry); err != nil {
		return err
	}
	fmt.Printf("Logged mood %+d (%d)\n", entry.Mood, entry.ID)
	return nil
}

type MoodListCmd struct {
	FilterFlags
	All bool `help:"Show the full history instead of today's entries."`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetMoodEntries()
	if err != nil {
		return err
	}

	var visible []models.MoodEntry
	if c.All {
		visible = insights.Filter(entries, c.Query())
	} else {
		visible = insights.VisibleMoodEntries(entries, c.Query(), ctx.Today())
	}

	if len(visible) == 0 {
		fmt.Println("No mood entries.")
		return nil
	}
	for _, e := range visible {
		line := fmt.Sprintf("%s%s %s  %+d", FavoriteMarker(e.IsFavorite), e.Date, e.Time, e.Mood)
		if e.Note != "" {
			line += "  " + e.Note
		}
		if len(e.Activities) > 0 {
			line += "  [" + strings.Join(e.Activities, ", ") + "]"
		}
		fmt.Printf("%s  (%d)\n", line, e.ID)
	}
	return nil
}

type MoodDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *MoodDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteMoodEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted mood entry %d\n", c.ID)
	return nil
}

type MoodFavoriteCmd struct {
	ID int64 `arg:"" help:"Entry id to toggle."`
}

func (c *MoodFavoriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.ToggleMoodFavorite(c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled favorite on mood entry %d\n", c.ID)
	return nil
}
