package sqlite

import (
	"testing"

	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/models"
)

func TestPreferences(t *testing.T) {
	t.Run("set and get each key", func(t *testing.T) {
		s := newTestStore(t)
		user := createTestUser(t, s, "ayse")

		for key, value := range map[models.PreferenceKey]string{
			models.PrefTheme:  "Purple",
			models.PrefCity:   "Izmir",
			models.PrefAPIKey: "abc123",
		} {
			if err := s.SetPreference(user.ID, key, value); err != nil {
				t.Fatalf("SetPreference(%s) failed: %v", key, err)
			}
			got, err := s.GetPreference(user.ID, key)
			if err != nil {
				t.Fatalf("GetPreference(%s) failed: %v", key, err)
			}
			if got != value {
				t.Errorf("GetPreference(%s) = %q, want %q", key, got, value)
			}
		}

		all, err := s.GetPreferences(user.ID)
		if err != nil {
			t.Fatalf("GetPreferences failed: %v", err)
		}
		if all.Theme != "Purple" || all.City != "Izmir" || all.APIKey != "abc123" {
			t.Errorf("GetPreferences = %+v", all)
		}
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		s := newTestStore(t)
		user := createTestUser(t, s, "ayse")

		if err := s.SetPreference(user.ID, models.PreferenceKey("language"), "tr"); !errors.Is(err, errors.ErrValidation) {
			t.Errorf("SetPreference: expected ErrValidation, got %v", err)
		}
		if _, err := s.GetPreference(user.ID, models.PreferenceKey("language")); !errors.Is(err, errors.ErrValidation) {
			t.Errorf("GetPreference: expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		s := newTestStore(t)

		if err := s.SetPreference("ghost", models.PrefCity, "Bursa"); !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("SetPreference: expected ErrNotFound, got %v", err)
		}
		if _, err := s.GetPreference("ghost", models.PrefCity); !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("GetPreference: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("clearing the api key stores empty", func(t *testing.T) {
		s := newTestStore(t)
		user := createTestUser(t, s, "ayse")

		if err := s.SetPreference(user.ID, models.PrefAPIKey, "abc123"); err != nil {
			t.Fatalf("SetPreference failed: %v", err)
		}
		if err := s.SetPreference(user.ID, models.PrefAPIKey, ""); err != nil {
			t.Fatalf("clearing SetPreference failed: %v", err)
		}
		got, err := s.GetPreference(user.ID, models.PrefAPIKey)
		if err != nil {
			t.Fatalf("GetPreference failed: %v", err)
		}
		if got != "" {
			t.Errorf("api key = %q after clear, want empty", got)
		}
	})
}
