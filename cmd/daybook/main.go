package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/cli/entries"
	"github.com/julianstephens/daybook/internal/cli/health"
	"github.com/julianstephens/daybook/internal/cli/settings"
	"github.com/julianstephens/daybook/internal/cli/system"
	"github.com/julianstephens/daybook/internal/cli/users"
	"github.com/julianstephens/daybook/internal/cli/weathercmd"
	"github.com/julianstephens/daybook/internal/config"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/daybook/daybook.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd       `cmd:"" help:"Initialize daybook storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Register users.RegisterCmd    `cmd:"" help:"Create a new account."`
	Entry    struct {
		Add    entries.EntryAddCmd    `cmd:"" help:"Write a new diary entry."`
		List   entries.EntryListCmd   `cmd:"" help:"List your entries, newest first."`
		Show   entries.EntryShowCmd   `cmd:"" help:"Show one entry in full."`
		Delete entries.EntryDeleteCmd `cmd:"" help:"Delete an entry."`
	} `cmd:"" help:"Manage diary entries."`
	Health struct {
		Log  health.LogCmd  `cmd:"" help:"Save today's health figures." default:"1"`
		Show health.ShowCmd `cmd:"" help:"Show a day's health figures."`
	} `cmd:"" help:"Track water, exercise and sleep."`
	Weather  weathercmd.WeatherCmd `cmd:"" help:"Fetch current weather and a clothing suggestion."`
	Settings settings.SettingsCmd  `cmd:"" help:"Manage per-user settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daybook"),
		kong.Description("Personal diary, health log and weather companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := sqlite.NewStore(CLI.Config)
	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
