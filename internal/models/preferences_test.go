package models

import "testing"

func TestPreferenceKeyValid(t *testing.T) {
	for _, key := range []PreferenceKey{PrefTheme, PrefCity, PrefAPIKey} {
		if !key.Valid() {
			t.Errorf("%q should be valid", key)
		}
	}
	for _, key := range []PreferenceKey{"", "language", "Theme", "apikey"} {
		if PreferenceKey(key).Valid() {
			t.Errorf("%q should be invalid", key)
		}
	}
}

func TestValidTheme(t *testing.T) {
	for _, name := range ThemeNames {
		if !ValidTheme(name) {
			t.Errorf("catalog theme %q rejected", name)
		}
	}
	for _, name := range []string{"", "blue", "Neon"} {
		if ValidTheme(name) {
			t.Errorf("unknown theme %q accepted", name)
		}
	}
}
