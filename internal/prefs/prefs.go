// Package prefs is the typed accessor over the per-user preference row.
// Keys are restricted to the closed set in models; reads fall back to
// documented defaults when nothing is stored.
package prefs

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/keyring"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

// EnvAPIKey is the environment fallback for the weather API key, lowest in
// the resolution order.
const EnvAPIKey = "DAYBOOK_API_KEY"

// Prefs reads and writes one user's settings.
type Prefs struct {
	store  storage.Provider
	userID string
}

func New(store storage.Provider, userID string) *Prefs {
	return &Prefs{store: store, userID: userID}
}

// Theme returns the user's theme, or the default when unset.
func (p *Prefs) Theme() string {
	value, err := p.store.GetPreference(p.userID, models.PrefTheme)
	if err != nil || value == "" {
		return constants.DefaultTheme
	}
	return value
}

// SetTheme stores the theme after checking it against the palette catalog.
func (p *Prefs) SetTheme(name string) error {
	if !models.ValidTheme(name) {
		return fmt.Errorf("%w: unknown theme %q (options: %s)",
			errors.ErrValidation, name, strings.Join(models.ThemeNames, ", "))
	}
	return p.store.SetPreference(p.userID, models.PrefTheme, name)
}

// City returns the user's default weather city, or the default when unset.
func (p *Prefs) City() string {
	value, err := p.store.GetPreference(p.userID, models.PrefCity)
	if err != nil || value == "" {
		return constants.DefaultCity
	}
	return value
}

func (p *Prefs) SetCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return fmt.Errorf("%w: city must not be empty", errors.ErrValidation)
	}
	return p.store.SetPreference(p.userID, models.PrefCity, city)
}

// APIKey resolves the weather API key. Order: the user's preference row,
// then the OS keyring, then the environment. The second return reports
// whether any key was found; an empty stored value means "not configured",
// not a key.
func (p *Prefs) APIKey() (string, bool) {
	if value, err := p.store.GetPreference(p.userID, models.PrefAPIKey); err == nil && value != "" {
		return value, true
	}
	if key, err := keyring.GetAPIKey(); err == nil && key != "" {
		return key, true
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, true
	}
	return "", false
}

// SetAPIKey stores the key in the preference row.
func (p *Prefs) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: api key must not be empty (use ClearAPIKey to remove)", errors.ErrValidation)
	}
	return p.store.SetPreference(p.userID, models.PrefAPIKey, key)
}

// ClearAPIKey removes the stored key, returning the user to the
// "no key configured" state.
func (p *Prefs) ClearAPIKey() error {
	return p.store.SetPreference(p.userID, models.PrefAPIKey, "")
}
