package storage

import "github.com/julianstephens/daybook/internal/models"

// Provider is the persistence contract. Every operation is a single
// statement (or a single transaction for CreateUser) against the embedded
// store; there are no long-lived transactions.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Users
	// CreateUser inserts the user together with a defaults preferences row
	// in one transaction. A taken username yields errors.ErrDuplicate and
	// leaves the preferences table untouched.
	CreateUser(user models.User) error
	GetUserByUsername(username string) (models.User, error)

	// Entries
	AddEntry(entry models.Entry) error
	GetEntry(id string) (models.Entry, error)
	// ListEntries returns entry summaries for the user, newest first.
	ListEntries(userID string) ([]models.EntrySummary, error)
	DeleteEntry(id string) error

	// Health logs
	UpsertHealthLog(log models.HealthLog) error
	// GetHealthLog returns the log for (user, date), or a zero-valued log
	// when none exists.
	GetHealthLog(userID, date string) (models.HealthLog, error)

	// Preferences
	GetPreferences(userID string) (models.Preferences, error)
	GetPreference(userID string, key models.PreferenceKey) (string, error)
	SetPreference(userID string, key models.PreferenceKey, value string) error
}
