package cli

import (
	"fmt"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/models"
	"github.com/mindtrackhq/mindtrack/internal/validation"
)

type GratitudeAddCmd struct {
	Text string `arg:"" help:"What you're grateful for."`
	Date string `help:"Override entry date (YYYY-MM-DD)."`
}

func (c *GratitudeAddCmd) Run(ctx *Context) error {
	entry := models.GratitudeEntry{
		ID:        models.NewEntryID(),
		Text:      c.Text,
		Date:      c.Date,
		CreatedAt: time.Now(),
	}
	if entry.Date == "" {
		entry.Date = ctx.Today()
	}
	if err := validation.ValidateGratitudeEntry(entry); err != nil {
		return err
	}
	if err := ctx.Store.AddGratitudeEntry(entry); err != nil {
		return err
	}
	fmt.Printf("Noted (%d)\n", entry.ID)
	return nil
}

type GratitudeListCmd struct {
	FilterFlags
}

func (c *GratitudeListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetGratitudeEntries()
	if err != nil {
		return err
	}
	visible := insights.Filter(entries, c.Query())
	if len(visible) == 0 {
		fmt.Println("No gratitude entries.")
		return nil
	}
	for _, e := range visible {
		fmt.Printf("%s%s  %s  (%d)\n", FavoriteMarker(e.IsFavorite), e.Date, e.Text, e.ID)
	}
	return nil
}

type GratitudeDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *GratitudeDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteGratitudeEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted gratitude entry %d\n", c.ID)
	return nil
}

type GratitudeFavoriteCmd struct {
	ID int64 `arg:"" help:"Entry id to toggle."`
}

func (c *GratitudeFavoriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.ToggleGratitudeFavorite(c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled favorite on gratitude entry %d\n", c.ID)
	return nil
}
