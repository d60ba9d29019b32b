package cli

import (
	"fmt"

	"github.com/mindtrackhq/mindtrack/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	b, err := backup.Create(ctx.DataDir())
	if err != nil {
		return err
	}
	fmt.Printf("Created backup %s\n", b.Name)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	backups, err := backup.List(ctx.DataDir())
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups.")
		return nil
	}
	for _, b := range backups {
		fmt.Println(b.Name)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup name to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if err := backup.Restore(ctx.DataDir(), c.Name); err != nil {
		return err
	}
	fmt.Printf("Restored backup %s\n", c.Name)
	return nil
}
