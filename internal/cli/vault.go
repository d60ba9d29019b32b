package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/models"
	"github.com/mindtrackhq/mindtrack/internal/validation"
)

// VaultFlags carries the password gate shared by vault commands.
type VaultFlags struct {
	Password string `short:"p" help:"Vault password." env:"MINDTRACK_VAULT_PASSWORD" required:""`
}

type VaultSetPasswordCmd struct {
	Password string `arg:"" help:"New vault password."`
	Current  string `help:"Current password, required when one is already set."`
}

func (c *VaultSetPasswordCmd) Run(ctx *Context) error {
	if err := validation.ValidateVaultPassword(c.Password); err != nil {
		return err
	}
	stored, err := ctx.Store.GetVaultPassword()
	if err != nil {
		return err
	}
	if stored != "" && stored != c.Current {
		return ErrVaultLocked
	}
	if err := ctx.Store.SetVaultPassword(c.Password); err != nil {
		return err
	}
	fmt.Println("Vault password set.")
	return nil
}

type VaultUnlockCmd struct {
	VaultFlags
}

func (c *VaultUnlockCmd) Run(ctx *Context) error {
	if err := ctx.UnlockVault(c.Password); err != nil {
		return err
	}
	fmt.Println("Vault unlocked.")
	return nil
}

type VaultAddCmd struct {
	VaultFlags
	Title    string `arg:"" help:"Entry title."`
	Content  string `arg:"" optional:"" help:"Entry content."`
	Category string `short:"c" help:"Category name."`
}

func (c *VaultAddCmd) Run(ctx *Context) error {
	if err := ctx.UnlockVault(c.Password); err != nil {
		return err
	}
	now := time.Now()
	entry := models.VaultEntry{
		ID:        models.NewEntryID(),
		Title:     c.Title,
		Content:   c.Content,
		Category:  c.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validation.ValidateVaultEntry(entry); err != nil {
		return err
	}
	if err := ctx.Store.AddVaultEntry(entry); err != nil {
		return err
	}
	fmt.Printf("Added vault entry (%d)\n", entry.ID)
	return nil
}

type VaultListCmd struct {
	VaultFlags
	FilterFlags
}

func (c *VaultListCmd) Run(ctx *Context) error {
	if err := ctx.UnlockVault(c.Password); err != nil {
		return err
	}
	entries, err := ctx.Store.GetVaultEntries()
	if err != nil {
		return err
	}
	visible := insights.Filter(entries, c.Query())
	if len(visible) == 0 {
		fmt.Println("No vault entries.")
		return nil
	}
	for _, e := range visible {
		line := fmt.Sprintf("%s%s", FavoriteMarker(e.IsFavorite), e.Title)
		if e.Category != "" {
			line += "  (" + e.Category + ")"
		}
		fmt.Printf("%s  (%d)\n", line, e.ID)
		if e.Content != "" {
			fmt.Printf("      %s\n", e.Content)
		}
	}
	return nil
}

type VaultDeleteCmd struct {
	VaultFlags
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *VaultDeleteCmd) Run(ctx *Context) error {
	if err := ctx.UnlockVault(c.Password); err != nil {
		return err
	}
	if err := ctx.Store.DeleteVaultEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted vault entry %d\n", c.ID)
	return nil
}

type VaultCategoryAddCmd struct {
	VaultFlags
	Name  string `arg:"" help:"Category name."`
	Color string `help:"Hex color for the TUI." default:"#abb2bf"`
}

func (c *VaultCategoryAddCmd) Run(ctx *Context) error {
	if err := ctx.UnlockVault(c.Password); err != nil {
		return err
	}
	if err := validation.ValidateCategory(c.Name); err != nil {
		return err
	}
	category := models.VaultCategory{
		ID:    "vault-" + uuid.NewString(),
		Name:  c.Name,
		Color: c.Color,
	}
	if err := ctx.Store.AddVaultCategory(category); err != nil {
		return err
	}
	fmt.Printf("Added vault category %q\n", c.Name)
	return nil
}
