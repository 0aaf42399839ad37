package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/models"
)

// CreateUser inserts the user and a defaults preferences row in a single
// transaction. On a username collision the transaction rolls back, so a
// failed registration never leaves a preferences row behind.
func (s *Store) CreateUser(user models.User) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO users (id, username, password_hash, name, surname) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Username, user.PasswordHash, user.Name, user.Surname,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %q is taken", errors.ErrDuplicate, user.Username)
		}
		return err
	}

	_, err = tx.Exec(
		"INSERT INTO preferences (user_id, theme, city, api_key) VALUES (?, ?, ?, '')",
		user.ID, constants.DefaultTheme, constants.DefaultCity,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	row := s.db.QueryRow(
		"SELECT id, username, password_hash, name, surname FROM users WHERE username = ?",
		username,
	)

	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Surname)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("%w: user %q", errors.ErrNotFound, username)
		}
		return models.User{}, err
	}

	return u, nil
}

// isUniqueViolation inspects a driver error for a UNIQUE constraint
// failure. modernc.org/sqlite does not export a typed constraint error, so
// the message is the only signal available.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
