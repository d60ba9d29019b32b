package system

import (
	"fmt"
	"os"

	"github.com/mindtrackhq/mindtrack/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing data before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dataPath := ctx.Store.GetDataPath()
		if _, err := os.Stat(dataPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.RemoveAll(dataPath); err != nil {
				return fmt.Errorf("failed to delete existing data: %w", err)
			}
			fmt.Printf("Deleted existing data at: %s\n", dataPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing data: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized mindtrack storage at: %s\n", ctx.Store.GetDataPath())
	return nil
}
