package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/auth"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/prefs"
	"github.com/julianstephens/daybook/internal/storage/sqlite"
)

func newTestPrefs(t *testing.T) *prefs.Prefs {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "daybook.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.User{
		ID:           uuid.NewString(),
		Username:     "ayse",
		PasswordHash: auth.HashPassword("gizli-sifre"),
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return prefs.New(store, user.ID)
}

func TestThemePreference(t *testing.T) {
	p := newTestPrefs(t)

	if got := p.Theme(); got != constants.DefaultTheme {
		t.Errorf("fresh Theme() = %q, want %q", got, constants.DefaultTheme)
	}

	if err := p.SetTheme("Forest"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if got := p.Theme(); got != "Forest" {
		t.Errorf("Theme() = %q, want Forest", got)
	}

	if err := p.SetTheme("Neon"); !errors.Is(err, errors.ErrValidation) {
		t.Errorf("SetTheme(Neon): expected ErrValidation, got %v", err)
	}
	if got := p.Theme(); got != "Forest" {
		t.Errorf("rejected theme overwrote the stored one: %q", got)
	}
}

func TestCityPreference(t *testing.T) {
	p := newTestPrefs(t)

	if got := p.City(); got != constants.DefaultCity {
		t.Errorf("fresh City() = %q, want %q", got, constants.DefaultCity)
	}

	if err := p.SetCity("  Izmir  "); err != nil {
		t.Fatalf("SetCity failed: %v", err)
	}
	if got := p.City(); got != "Izmir" {
		t.Errorf("City() = %q, want trimmed Izmir", got)
	}

	if err := p.SetCity("   "); !errors.Is(err, errors.ErrValidation) {
		t.Errorf("SetCity(blank): expected ErrValidation, got %v", err)
	}
}

func TestAPIKeyResolution(t *testing.T) {
	t.Run("stored key wins over environment", func(t *testing.T) {
		p := newTestPrefs(t)
		t.Setenv(prefs.EnvAPIKey, "env-key")

		if err := p.SetAPIKey("stored-key"); err != nil {
			t.Fatalf("SetAPIKey failed: %v", err)
		}
		key, ok := p.APIKey()
		if !ok || key != "stored-key" {
			t.Errorf("APIKey() = %q, %v; want stored-key", key, ok)
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		p := newTestPrefs(t)
		t.Setenv(prefs.EnvAPIKey, "env-key")

		key, ok := p.APIKey()
		if !ok || key != "env-key" {
			t.Errorf("APIKey() = %q, %v; want env-key", key, ok)
		}
	})

	t.Run("cleared key reads as absent", func(t *testing.T) {
		p := newTestPrefs(t)
		t.Setenv(prefs.EnvAPIKey, "")

		if err := p.SetAPIKey("stored-key"); err != nil {
			t.Fatalf("SetAPIKey failed: %v", err)
		}
		if err := p.ClearAPIKey(); err != nil {
			t.Fatalf("ClearAPIKey failed: %v", err)
		}
		if key, ok := p.APIKey(); ok {
			t.Errorf("APIKey() = %q after clear, want absent", key)
		}
	})

	t.Run("blank key rejected", func(t *testing.T) {
		p := newTestPrefs(t)
		if err := p.SetAPIKey("  "); !errors.Is(err, errors.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}
