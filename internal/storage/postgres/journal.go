package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

func (s *Store) CreateJournalEntry(entry models.JournalEntry) (models.JournalEntry, error) {
	err := s.db.QueryRow(`
		INSERT INTO journal_entries (user_id, title, content, mood, is_private)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		entry.UserID, entry.Title, entry.Content, nullString(string(entry.Mood)), entry.IsPrivate,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	return entry, nil
}

func (s *Store) GetJournalEntries(userID int64) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, content, mood, is_private, created_at, updated_at
		FROM journal_entries WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var out []models.JournalEntry
	for rows.Next() {
		e, err := scanJournalEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetJournalEntry(userID, entryID int64) (models.JournalEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, title, content, mood, is_private, created_at, updated_at
		FROM journal_entries WHERE id = $1 AND user_id = $2`, entryID, userID)
	return scanJournalEntry(row.Scan)
}

func scanJournalEntry(scan func(...any) error) (models.JournalEntry, error) {
	var e models.JournalEntry
	var mood sql.NullString

	err := scan(&e.ID, &e.UserID, &e.Title, &e.Content, &mood, &e.IsPrivate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, storage.ErrNotFound
		}
		return models.JournalEntry{}, fmt.Errorf("scan journal entry: %w", err)
	}

	e.Mood = models.Mood(mood.String)
	return e, nil
}
