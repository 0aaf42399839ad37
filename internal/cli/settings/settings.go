package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/keyring"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/prefs"
)

type SettingsCmd struct {
	User string `help:"Username to act as." short:"u"`
	List bool   `help:"List current settings."`

	Theme       *string `help:"Theme palette name."`
	City        *string `help:"Default city for weather lookups."`
	APIKey      *string `help:"Weather API key." name:"api-key"`
	Keyring     bool    `help:"Store the API key in the OS keyring instead of the database."`
	ClearAPIKey bool    `help:"Remove the stored API key." name:"clear-api-key"`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}
	p := prefs.New(ctx.Store, session.UserID)

	if c.List {
		fmt.Println("Current settings:")
		fmt.Printf("  Theme: %s  (options: %s)\n", p.Theme(), strings.Join(models.ThemeNames, ", "))
		fmt.Printf("  City:  %s\n", p.City())
		if _, ok := p.APIKey(); ok {
			fmt.Printf("  API key: configured\n")
		} else {
			fmt.Printf("  API key: not configured\n")
		}
		return nil
	}

	updated := false
	if c.Theme != nil {
		if err := p.SetTheme(*c.Theme); err != nil {
			return err
		}
		updated = true
	}
	if c.City != nil {
		if err := p.SetCity(*c.City); err != nil {
			return err
		}
		updated = true
	}
	if c.APIKey != nil {
		if c.Keyring {
			if err := keyring.SetAPIKey(*c.APIKey); err != nil {
				return err
			}
		} else {
			if err := p.SetAPIKey(*c.APIKey); err != nil {
				return err
			}
		}
		updated = true
	}
	if c.ClearAPIKey {
		if err := p.ClearAPIKey(); err != nil {
			return err
		}
		// Best effort; the keyring copy may not exist.
		_ = keyring.DeleteAPIKey()
		updated = true
	}

	if updated {
		fmt.Println("Settings updated.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
