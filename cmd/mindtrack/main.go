package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mindtrackhq/mindtrack/internal/cli"
	apperrors "github.com/mindtrackhq/mindtrack/internal/errors"
	"github.com/mindtrackhq/mindtrack/internal/cli/system"
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/storage"
	"github.com/mindtrackhq/mindtrack/internal/storage/localstore"
	"github.com/mindtrackhq/mindtrack/internal/storage/sqlitestore"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data directory, or a .db path for SQLite storage." type:"string" default:"~/.config/mindtrack/data"`
	Debug   bool   `help:"Enable debug logging." hidden:""`

	Init   system.InitCmd   `cmd:"" help:"Initialize mindtrack storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Mood   struct {
		Add      cli.MoodAddCmd      `cmd:"" help:"Log a mood check-in."`
		List     cli.MoodListCmd     `cmd:"" help:"List mood entries (today by default)."`
		Delete   cli.MoodDeleteCmd   `cmd:"" help:"Delete a mood entry."`
		Favorite cli.MoodFavoriteCmd `cmd:"" help:"Toggle favorite on a mood entry."`
	} `cmd:"" help:"Track mood check-ins."`
	Trigger struct {
		Add      cli.TriggerAddCmd      `cmd:"" help:"Log a trigger."`
		List     cli.TriggerListCmd     `cmd:"" help:"List trigger entries."`
		Delete   cli.TriggerDeleteCmd   `cmd:"" help:"Delete a trigger entry."`
		Favorite cli.TriggerFavoriteCmd `cmd:"" help:"Toggle favorite on a trigger entry."`
		Category struct {
			Add    cli.TriggerCategoryAddCmd    `cmd:"" help:"Add a trigger category."`
			List   cli.TriggerCategoryListCmd   `cmd:"" help:"List trigger categories." default:"1"`
			Delete cli.TriggerCategoryDeleteCmd `cmd:"" help:"Delete a trigger category."`
		} `cmd:"" help:"Manage trigger categories."`
	} `cmd:"" help:"Journal triggers and coping strategies."`
	Gratitude struct {
		Add      cli.GratitudeAddCmd      `cmd:"" help:"Note something you're grateful for."`
		List     cli.GratitudeListCmd     `cmd:"" help:"List gratitude entries."`
		Delete   cli.GratitudeDeleteCmd   `cmd:"" help:"Delete a gratitude entry."`
		Favorite cli.GratitudeFavoriteCmd `cmd:"" help:"Toggle favorite on a gratitude entry."`
	} `cmd:"" help:"Keep a gratitude journal."`
	Goal struct {
		Add      cli.GoalAddCmd      `cmd:"" help:"Add a goal."`
		List     cli.GoalListCmd     `cmd:"" help:"List goals with progress."`
		Done     cli.GoalDoneCmd     `cmd:"" help:"Mark a goal complete."`
		Step     cli.GoalStepCmd     `cmd:"" help:"Add or toggle goal steps."`
		Delete   cli.GoalDeleteCmd   `cmd:"" help:"Delete a goal."`
		Favorite cli.GoalFavoriteCmd `cmd:"" help:"Toggle favorite on a goal."`
	} `cmd:"" help:"Track goals and steps."`
	Vault struct {
		SetPassword cli.VaultSetPasswordCmd `cmd:"" name:"set-password" help:"Set or change the vault password."`
		Unlock      cli.VaultUnlockCmd      `cmd:"" help:"Check the vault password."`
		Add         cli.VaultAddCmd         `cmd:"" help:"Add a private note."`
		List        cli.VaultListCmd        `cmd:"" help:"List private notes."`
		Delete      cli.VaultDeleteCmd      `cmd:"" help:"Delete a private note."`
		Category    struct {
			Add cli.VaultCategoryAddCmd `cmd:"" help:"Add a vault category."`
		} `cmd:"" help:"Manage vault categories."`
	} `cmd:"" help:"Password-gated private notes."`
	Exercise struct {
		Relax    cli.ExerciseRelaxCmd    `cmd:"" help:"Run a progressive muscle relaxation session."`
		Activate cli.ExerciseActivateCmd `cmd:"" help:"Run a behavioral activation session."`
		List     cli.ExerciseListCmd     `cmd:"" help:"List CBT/DBT techniques."`
		Favorite cli.ExerciseFavoriteCmd `cmd:"" help:"Toggle favorite on a technique."`
		History  cli.ExerciseHistoryCmd  `cmd:"" help:"Show completed exercise sessions."`
	} `cmd:"" help:"Guided CBT/DBT exercises."`
	Insights cli.InsightsCmd `cmd:"" help:"Show mood trend and trigger insights."`
	Auth     struct {
		Login         cli.AuthLoginCmd         `cmd:"" help:"Sign in."`
		Signup        cli.AuthSignupCmd        `cmd:"" help:"Create an account."`
		Logout        cli.AuthLogoutCmd        `cmd:"" help:"Sign out."`
		Whoami        cli.AuthWhoamiCmd        `cmd:"" help:"Show the signed-in user."`
		DeleteAccount cli.AuthDeleteAccountCmd `cmd:"" name:"delete-account" help:"Permanently delete the account."`
	} `cmd:"" help:"Manage the optional hosted account."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first mood, trigger, and gratitude tracker with guided CBT/DBT exercises"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dataPath := expandHome(CLI.Data)
	logDir := dataPath
	if strings.HasSuffix(dataPath, ".db") {
		logDir = filepath.Dir(dataPath)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: logDir}); err != nil {
		apperrors.Fatal(err)
	}

	// A .db path selects the SQLite store; anything else is a blob data dir
	var store storage.Provider
	if strings.HasSuffix(dataPath, ".db") {
		store = sqlitestore.New(dataPath)
	} else {
		store = localstore.New(dataPath)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init and tui handle their own loading)
	if selected := ctx.Selected(); selected != nil && selected.Name != "init" && selected.Name != "tui" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
