package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindtrackhq/mindtrack/internal/cache"
	"github.com/mindtrackhq/mindtrack/internal/cli"
	"github.com/mindtrackhq/mindtrack/internal/lockcheck"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	release, err := lockcheck.Acquire(ctx.DataDir())
	if err != nil {
		return err
	}
	defer release()

	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()
	warmCache(ctx)

	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

// warmCache drops stale cached responses and optionally re-warms the profile
// endpoint so whoami works offline.
func warmCache(ctx *cli.Context) {
	settings, err := ctx.Store.GetSettings()
	if err != nil || settings.IdentityURL == "" {
		return
	}
	transport := cache.NewTransport(ctx.DataDir(), nil)
	if err := transport.Activate(); err != nil {
		logger.Warn("cache activation failed", "error", err)
	}
	if !settings.CachePrecache {
		return
	}
	if snapshot, err := ctx.Store.GetProfileSnapshot(); err == nil && snapshot.ID != "" {
		transport.Precache([]string{settings.IdentityURL + "/profiles/" + snapshot.ID})
	}
}
