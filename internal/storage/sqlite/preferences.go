package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/models"
)

// prefColumn maps a preference key to its column. The switch is the whole
// point: queries are assembled from this fixed mapping, never from the
// caller's string.
func prefColumn(key models.PreferenceKey) (string, error) {
	switch key {
	case models.PrefTheme:
		return "theme", nil
	case models.PrefCity:
		return "city", nil
	case models.PrefAPIKey:
		return "api_key", nil
	default:
		return "", fmt.Errorf("%w: unknown preference key %q", errors.ErrValidation, key)
	}
}

func (s *Store) GetPreferences(userID string) (models.Preferences, error) {
	row := s.db.QueryRow(
		"SELECT user_id, theme, city, api_key FROM preferences WHERE user_id = ?",
		userID,
	)

	var p models.Preferences
	err := row.Scan(&p.UserID, &p.Theme, &p.City, &p.APIKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Preferences{}, fmt.Errorf("%w: preferences for user %s", errors.ErrNotFound, userID)
		}
		return models.Preferences{}, err
	}

	return p, nil
}

func (s *Store) GetPreference(userID string, key models.PreferenceKey) (string, error) {
	column, err := prefColumn(key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM preferences WHERE user_id = ?", column),
		userID,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("%w: preferences for user %s", errors.ErrNotFound, userID)
		}
		return "", err
	}

	return value, nil
}

func (s *Store) SetPreference(userID string, key models.PreferenceKey, value string) error {
	column, err := prefColumn(key)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		fmt.Sprintf("UPDATE preferences SET %s = ? WHERE user_id = ?", column),
		value, userID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: preferences for user %s", errors.ErrNotFound, userID)
	}
	return nil
}
