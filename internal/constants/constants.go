package constants

import "time"

const (
	// AppName is used for config paths, the keyring service name and log prefixes.
	AppName = "daybook"

	// DateFormat is the canonical calendar-date format used for health logs.
	DateFormat = "2006-01-02"
	// TimestampFormat is the storage format for entry creation timestamps.
	TimestampFormat = time.RFC3339

	// MinPasswordLen is the minimum accepted password length at registration.
	MinPasswordLen = 6

	// EntryPreviewLen is the number of runes of content shown in entry listings.
	EntryPreviewLen = 50
)

// Preference defaults. A missing preference row or column reads as these.
const (
	DefaultTheme = "Blue"
	DefaultCity  = "Istanbul"
)

// Weather client tuning.
const (
	WeatherFetchTimeout   = 10 * time.Second
	WeatherIconTimeout    = 5 * time.Second
	WeatherWatchInterval  = 30 * time.Minute
	WeatherLanguage       = "en"
	StrongWindThresholdMS = 7.0
)
