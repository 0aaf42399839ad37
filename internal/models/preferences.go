package models

// PreferenceKey names one per-user setting. The set is closed: anything
// outside it is rejected before touching storage, so no query is ever built
// from a caller-supplied key.
type PreferenceKey string

const (
	PrefTheme  PreferenceKey = "theme"
	PrefCity   PreferenceKey = "city"
	PrefAPIKey PreferenceKey = "api_key"
)

// Valid reports whether k is one of the known preference keys.
func (k PreferenceKey) Valid() bool {
	switch k {
	case PrefTheme, PrefCity, PrefAPIKey:
		return true
	}
	return false
}

// Preferences is the full per-user settings row. Exactly one exists per
// user, created with defaults at registration. An empty APIKey means no
// key is configured.
type Preferences struct {
	UserID string `json:"user_id"`
	Theme  string `json:"theme"`
	City   string `json:"city"`
	APIKey string `json:"api_key,omitempty"`
}

// ThemeNames lists the selectable theme palettes, in menu order. The first
// one is the default.
var ThemeNames = []string{
	"Blue",
	"Green",
	"Yellow",
	"Red",
	"Purple",
	"Orange",
	"Slate",
	"Pink",
	"Forest",
	"Sky",
}

// ValidTheme reports whether name is a known theme palette.
func ValidTheme(name string) bool {
	for _, n := range ThemeNames {
		if n == name {
			return true
		}
	}
	return false
}
