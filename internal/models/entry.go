package models

import "time"

// Entry is a single diary entry. The creation timestamp is assigned when the
// entry is saved and is immutable; entries are read-only afterwards except
// for deletion by their owner.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Important bool      `json:"important"`
}

// EntrySummary is the listing projection of an entry: everything but the
// full content, plus a short content preview.
type EntrySummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	Important bool      `json:"important"`
	Preview   string    `json:"preview"`
}
