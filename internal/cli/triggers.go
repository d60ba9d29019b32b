package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/models"
	"github.com/mindtrackhq/mindtrack/internal/validation"
)

type TriggerAddCmd struct {
	Description string `arg:"" help:"What happened."`
	Intensity   int    `short:"i" help:"Intensity (1-10)." required:""`
	Category    string `short:"c" help:"Category name."`
	Coping      string `help:"Coping strategy used."`
	Date        string `help:"Override entry date (YYYY-MM-DD)."`
}

func (c *TriggerAddCmd) Run(ctx *Context) error {
	now := time.Now()
	entry := models.TriggerEntry{
		ID:             models.NewEntryID(),
		Description:    c.Description,
		Category:       c.Category,
		Intensity:      c.Intensity,
		CopingStrategy: c.Coping,
		Date:           c.Date,
		Time:           now.Format(constants.TimeFormat),
		CreatedAt:      now,
	}
	if entry.Date == "" {
		entry.Date = ctx.Today()
	}
	if err := validation.ValidateTriggerEntry(entry); err != nil {
		return err
	}
	if err := ctx.Store.AddTriggerEntry(entry); err != nil {
		return err
	}
	fmt.Printf("Logged trigger (%d)\n", entry.ID)
	return nil
}

type TriggerListCmd struct {
	FilterFlags
}

func (c *TriggerListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetTriggerEntries()
	if err != nil {
		return err
	}
	visible := insights.Filter(entries, c.Query())
	if len(visible) == 0 {
		fmt.Println("No trigger entries.")
		return nil
	}
	for _, e := range visible {
		line := fmt.Sprintf("%s%s  [%d/10] %s", FavoriteMarker(e.IsFavorite), e.Date, e.Intensity, e.Description)
		if e.Category != "" {
			line += "  (" + e.Category + ")"
		}
		if e.CopingStrategy != "" {
			line += "  coped: " + e.CopingStrategy
		}
		fmt.Printf("%s  (%d)\n", line, e.ID)
	}
	return nil
}

type TriggerDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *TriggerDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteTriggerEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted trigger entry %d\n", c.ID)
	return nil
}

type TriggerFavoriteCmd struct {
	ID int64 `arg:"" help:"Entry id to toggle."`
}

func (c *TriggerFavoriteCmd) Run(ctx *Context) error {
	if err := ctx.Store.ToggleTriggerFavorite(c.ID); err != nil {
		return err
	}
	fmt.Printf("Toggled favorite on trigger entry %d\n", c.ID)
	return nil
}

type TriggerCategoryAddCmd struct {
	Name     string   `arg:"" help:"Category name."`
	Color    string   `help:"Hex color for the TUI." default:"#abb2bf"`
	Keywords []string `help:"Keywords suggesting this category."`
}

func (c *TriggerCategoryAddCmd) Run(ctx *Context) error {
	if err := validation.ValidateCategory(c.Name); err != nil {
		return err
	}
	category := models.TriggerCategory{
		ID:       "cat-" + uuid.NewString(),
		Name:     c.Name,
		Color:    c.Color,
		Keywords: c.Keywords,
	}
	if err := ctx.Store.AddTriggerCategory(category); err != nil {
		return err
	}
	fmt.Printf("Added category %q\n", c.Name)
	return nil
}

type TriggerCategoryListCmd struct{}

func (c *TriggerCategoryListCmd) Run(ctx *Context) error {
	categories, err := ctx.Store.GetTriggerCategories()
	if err != nil {
		return err
	}
	for _, cat := range categories {
		fmt.Printf("%-12s %s\n", cat.Name, cat.ID)
	}
	return nil
}

type TriggerCategoryDeleteCmd struct {
	ID string `arg:"" help:"Category id to delete."`
}

func (c *TriggerCategoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteTriggerCategory(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted category %s\n", c.ID)
	return nil
}
