package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/errors"
	"github.com/julianstephens/habitkit/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite path, .json path, PostgreSQL connection string, Redis URL, or 'keyring'. PostgreSQL passwords must come from the keyring, HABITKIT_DB_CONNECTION, or .pgpass." env:"HABITKIT_CONFIG" default:"~/.config/habitkit/habitkit.db"`
	Debug   bool   `help:"Log debug output to stderr." env:"HABITKIT_DEBUG"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habitkit storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive checklist." default:"1"`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Day     cli.DayCmd     `cmd:"" help:"Show completions for a day."`
	Week    cli.WeekCmd    `cmd:"" help:"Show completion rates for a week."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's progress grouped by time of day."`
	Login   cli.LoginCmd   `cmd:"" help:"Sign in to this store."`
	Logout  cli.LogoutCmd  `cmd:"" help:"Sign out and clear local data."`
	Whoami  cli.WhoamiCmd  `cmd:"" help:"Show the signed-in user."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage SQLite backups."`
	Keyring cli.KeyringCmd `cmd:"" help:"Manage the connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily habit tracker with streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(CLI.Config)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	appCtx := &cli.Context{Clock: time.Now}

	// Keyring commands never touch the store.
	if !strings.HasPrefix(ctx.Command(), "keyring") {
		store, err := cli.OpenStore(CLI.Config)
		if err != nil {
			errors.Fatal(err)
		}
		defer store.Close()

		if ctx.Selected() == nil || ctx.Selected().Name != "init" {
			if err := store.Load(); err != nil {
				errors.Fatal(err)
			}
		}
		appCtx.Store = store
	}

	logger.Debug("Running command", "command", ctx.Command(), "config", CLI.Config)
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// logDir puts logs next to a file store and under the default config directory
// otherwise.
func logDir(config string) string {
	path := config
	if !strings.HasSuffix(path, ".db") && !strings.HasSuffix(path, constants.JSONConfigExtension) {
		path = constants.DefaultConfigPath
	}
	expanded, err := cli.ExpandPath(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(expanded)
}
