package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/validation"
)

func (s *Store) AddEntry(entry models.Entry) error {
	if err := validation.ValidateEntryContent(entry.Content); err != nil {
		return err
	}

	important := 0
	if entry.Important {
		important = 1
	}

	_, err := s.db.Exec(
		"INSERT INTO entries (id, user_id, created_at, title, content, mood, important) VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.ID, entry.UserID, entry.CreatedAt.Format(constants.TimestampFormat),
		entry.Title, entry.Content, entry.Mood, important,
	)
	return err
}

func (s *Store) GetEntry(id string) (models.Entry, error) {
	row := s.db.QueryRow(
		"SELECT id, user_id, created_at, title, content, mood, important FROM entries WHERE id = ?",
		id,
	)

	var e models.Entry
	var createdAt string
	var important int

	err := row.Scan(&e.ID, &e.UserID, &createdAt, &e.Title, &e.Content, &e.Mood, &important)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Entry{}, fmt.Errorf("%w: entry %s", errors.ErrNotFound, id)
		}
		return models.Entry{}, err
	}

	e.CreatedAt, err = time.Parse(constants.TimestampFormat, createdAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.Important = important != 0

	return e, nil
}

// ListEntries returns summaries for the user's entries, newest first. The
// preview is the first 50 characters of the content.
func (s *Store) ListEntries(userID string) ([]models.EntrySummary, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT id, created_at, title, mood, important, SUBSTR(content, 1, %d)
		FROM entries WHERE user_id = ? ORDER BY created_at DESC`, constants.EntryPreviewLen),
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.EntrySummary
	for rows.Next() {
		var sum models.EntrySummary
		var createdAt string
		var important int

		if err := rows.Scan(&sum.ID, &createdAt, &sum.Title, &sum.Mood, &important, &sum.Preview); err != nil {
			return nil, err
		}

		sum.CreatedAt, err = time.Parse(constants.TimestampFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		sum.Important = important != 0
		summaries = append(summaries, sum)
	}

	return summaries, rows.Err()
}

func (s *Store) DeleteEntry(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: entry %s", errors.ErrNotFound, id)
	}
	return nil
}
