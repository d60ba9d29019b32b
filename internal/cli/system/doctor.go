package system

import (
	"fmt"
	"os"

	"github.com/mindtrackhq/mindtrack/internal/backup"
	"github.com/mindtrackhq/mindtrack/internal/cli"
	"github.com/mindtrackhq/mindtrack/internal/lockcheck"
	"github.com/mindtrackhq/mindtrack/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeLoaded := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeLoaded = true
	}

	// Check 2: lockfile state
	info, err := lockcheck.Inspect(ctx.DataDir())
	switch {
	case os.IsNotExist(err):
		fmt.Printf("✓ Lockfile: OK (not held)\n")
	case err != nil:
		fmt.Printf("❌ Lockfile: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	case info.Alive:
		fmt.Printf("⚠ Lockfile: held by running process %d\n", info.PID)
	default:
		fmt.Printf("⚠ Lockfile: stale (pid %d is dead); it will be replaced on next open\n", info.PID)
	}

	// Check 3: settings sanity (only if storage is reachable)
	if storeLoaded {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else if _, err := utils.LoadLocation(settings.Timezone); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: invalid timezone %q\n", settings.Timezone)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
			if settings.IdentityURL == "" {
				fmt.Printf("   (identity endpoint not configured; auth commands disabled)\n")
			}
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (storage not reachable)\n")
	}

	// Check 4: backups present (warning only)
	backups, err := backup.List(ctx.DataDir())
	if err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found. Run 'mindtrack backup create'.\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d retained)\n", len(backups))
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
