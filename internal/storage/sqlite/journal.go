package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

func (s *Store) CreateJournalEntry(entry models.JournalEntry) (models.JournalEntry, error) {
	now := time.Now()
	res, err := s.db.Exec(`
		INSERT INTO journal_entries (user_id, title, content, mood, is_private, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Title, entry.Content, nullString(string(entry.Mood)),
		entry.IsPrivate, formatTime(now), formatTime(now))
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("insert journal entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("read inserted entry id: %w", err)
	}
	entry.ID = id
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return entry, nil
}

func (s *Store) GetJournalEntries(userID int64) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, content, mood, is_private, created_at, updated_at
		FROM journal_entries WHERE user_id = ?
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
		FROM journal_entries WHERE id = ? AND user_id = ?`, entryID, userID)
	return scanJournalEntry(row.Scan)
}

func scanJournalEntry(scan func(...any) error) (models.JournalEntry, error) {
	var e models.JournalEntry
	var mood sql.NullString
	var createdAt, updatedAt string

	err := scan(&e.ID, &e.UserID, &e.Title, &e.Content, &mood, &e.IsPrivate, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, storage.ErrNotFound
		}
		return models.JournalEntry{}, fmt.Errorf("scan journal entry: %w", err)
	}

	e.Mood = models.Mood(mood.String)
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.JournalEntry{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.JournalEntry{}, err
	}
	return e, nil
}
