package tui

import (
	"strings"
	"testing"

	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/models"
)

func TestNewStylesFallsBackToBlue(t *testing.T) {
	fallback := newStyles("NoSuchTheme")
	blue := newStyles("Blue")
	if fallback.title.GetForeground() != blue.title.GetForeground() {
		t.Error("unknown theme did not fall back to the Blue palette")
	}
}

func TestEveryThemeHasAPalette(t *testing.T) {
	for _, name := range models.ThemeNames {
		if _, ok := palettes[name]; !ok {
			t.Errorf("theme %q has no palette", name)
		}
	}
}

func TestTabTitlesMatchStates(t *testing.T) {
	if got, want := len(tabTitles), int(stateSettings)-int(stateHome)+1; got != want {
		t.Errorf("len(tabTitles) = %d, want %d", got, want)
	}
}

func TestWeatherErrText(t *testing.T) {
	cases := map[error]string{
		errors.ErrUnauthorized: "API key",
		errors.ErrNotFound:     "City not found",
		errors.ErrNetwork:      "Could not reach",
		errors.ErrUpstream:     "weather service returned",
	}
	for err, want := range cases {
		got := weatherErrText(err)
		if !strings.Contains(got, want) {
			t.Errorf("weatherErrText(%v) = %q, want substring %q", err, got, want)
		}
	}
}
