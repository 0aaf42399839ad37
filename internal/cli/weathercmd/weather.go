package weathercmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/prefs"
	"github.com/julianstephens/daybook/internal/scheduler"
	"github.com/julianstephens/daybook/internal/weather"
)

const apiKeyGuidance = `No weather API key is configured.

How to get one:
  1. Go to https://openweathermap.org/ and sign up for a free account.
  2. Open "My API keys" under your account menu.
  3. Copy the default key (or create one).

Then store it with:
  daybook settings --user <name> --api-key <key>
or export DAYBOOK_API_KEY in your environment.`

type WeatherCmd struct {
	User     string        `help:"Username to act as." short:"u"`
	City     string        `help:"City to look up (default: your configured city)."`
	Icon     string        `help:"Save the condition icon PNG to this path." type:"path"`
	Watch    bool          `help:"Keep running and re-fetch on an interval."`
	Interval time.Duration `help:"Re-fetch interval in watch mode." default:"30m"`
}

func (c *WeatherCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}

	p := prefs.New(ctx.Store, session.UserID)
	// Flag beats the environment override beats the stored preference.
	city := c.City
	if city == "" {
		city = ctx.Config.City
	}
	if city == "" {
		city = p.City()
	}

	apiKey, ok := p.APIKey()
	if !ok {
		fmt.Println(apiKeyGuidance)
		return fmt.Errorf("%w: no api key configured", errors.ErrUnauthorized)
	}

	client := weather.NewClient(ctx.Config.Language)

	fetch := func(fetchCtx context.Context) {
		snap, err := client.Current(fetchCtx, city, apiKey)
		if err != nil {
			logger.Warn("weather fetch failed", "city", city, "error", err)
			printUnavailable(err)
			return
		}
		printSnapshot(snap)
		if c.Icon != "" && snap.IconCode != "" {
			saveIcon(client, snap.IconCode, c.Icon)
		}
	}

	fetchCtx, cancel := context.WithTimeout(context.Background(), constants.WeatherFetchTimeout)
	fetch(fetchCtx)
	cancel()

	if !c.Watch {
		return nil
	}

	sched := scheduler.New(c.Interval, fetch)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	fmt.Printf("\nWatching %s every %s. Press Ctrl+C to stop.\n", city, c.Interval)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	return nil
}

func printSnapshot(snap weather.Snapshot) {
	fmt.Printf("%s, %s\n", snap.City, snap.Country)
	fmt.Printf("  Temperature: %.1f°C (feels like %.1f°C)\n", snap.Temperature, snap.FeelsLike)
	fmt.Printf("  Conditions:  %s\n", snap.Description)
	fmt.Printf("  Humidity:    %d%%\n", snap.Humidity)
	fmt.Printf("  Wind:        %.1f m/s\n", snap.WindSpeed)
	fmt.Printf("\n%s\n", weather.SuggestFor(snap))
}

// saveIcon is best-effort: the forecast was already shown, a missing icon
// only logs a warning.
func saveIcon(client *weather.Client, code, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.WeatherIconTimeout)
	defer cancel()

	data, err := client.Icon(ctx, code)
	if err != nil {
		logger.Warn("icon fetch failed", "code", code, "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Warn("could not save icon", "path", path, "error", err)
		return
	}
	fmt.Printf("\nSaved icon to %s.\n", path)
}

// printUnavailable resets the display to explicit markers; stale values are
// never shown after a failed fetch.
func printUnavailable(err error) {
	switch {
	case errors.Is(err, errors.ErrUnauthorized):
		fmt.Println("Temperature: unavailable (API key missing or invalid)")
	case errors.Is(err, errors.ErrNotFound):
		fmt.Println("Temperature: unavailable (city not found)")
	case errors.Is(err, errors.ErrNetwork):
		fmt.Println("Temperature: unavailable (could not reach the weather service)")
	default:
		fmt.Println("Temperature: unavailable")
	}
	fmt.Println("Conditions:  -")
	fmt.Println("Humidity:    -")
	fmt.Println("Wind:        -")
}
