package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

// SaveRoutine upserts the routine for (UserID, Day). A second save for
// the same day replaces the stored steps, notes, and skin status while
// keeping the original row and its created_at.
func (s *Store) SaveRoutine(routine models.Routine) (models.Routine, error) {
	steps, err := json.Marshal(routine.Steps)
	if err != nil {
		return models.Routine{}, fmt.Errorf("encode steps: %w", err)
	}

	now := time.Now()
	_, err = s.db.Exec(`
		INSERT INTO routines (user_id, day, steps, notes, skin_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, day) DO UPDATE SET
			steps = excluded.steps,
			notes = excluded.notes,
			skin_status = excluded.skin_status,
			updated_at = excluded.updated_at`,
		routine.UserID, routine.Day, string(steps),
		nullString(routine.Notes), nullString(string(routine.SkinStatus)),
		formatTime(now), formatTime(now))
	if err != nil {
		return models.Routine{}, fmt.Errorf("upsert routine: %w", err)
	}

	return s.GetRoutineByDay(routine.UserID, routine.Day)
}

func (s *Store) GetRoutineByDay(userID int64, day string) (models.Routine, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, day, steps, notes, skin_status, created_at, updated_at
		FROM routines WHERE user_id = ? AND day = ?`, userID, day)
	return scanRoutine(row.Scan)
}

func (s *Store) GetRoutineHistory(userID int64, sinceDay string) ([]models.Routine, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, day, steps, notes, skin_status, created_at, updated_at
		FROM routines WHERE user_id = ? AND day >= ?
		ORDER BY day DESC`, userID, sinceDay)
	if err != nil {
		return nil, fmt.Errorf("query routine history: %w", err)
	}
	defer rows.Close()

	var out []models.Routine
	for rows.Next() {
		r, err := scanRoutine(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanRoutine(scan func(...any) error) (models.Routine, error) {
	var r models.Routine
	var steps string
	var notes, skinStatus sql.NullString
	var createdAt, updatedAt string

	err := scan(&r.ID, &r.UserID, &r.Day, &steps, &notes, &skinStatus, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Routine{}, storage.ErrNotFound
		}
		return models.Routine{}, fmt.Errorf("scan routine: %w", err)
	}

	if err := json.Unmarshal([]byte(steps), &r.Steps); err != nil {
		return models.Routine{}, fmt.Errorf("decode steps: %w", err)
	}
	r.Notes = notes.String
	r.SkinStatus = models.SkinStatus(skinStatus.String)
	if r.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Routine{}, err
	}
	if r.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.Routine{}, err
	}
	return r, nil
}
