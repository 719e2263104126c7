package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

// SaveRoutine upserts the routine for (UserID, Day), latest write wins.
func (s *Store) SaveRoutine(routine models.Routine) (models.Routine, error) {
	steps, err := json.Marshal(routine.Steps)
	if err != nil {
		return models.Routine{}, fmt.Errorf("encode steps: %w", err)
	}

	err = s.db.QueryRow(`
		INSERT INTO routines (user_id, day, steps, notes, skin_status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, day) DO UPDATE SET
			steps = EXCLUDED.steps,
			notes = EXCLUDED.notes,
			skin_status = EXCLUDED.skin_status,
			updated_at = now()
		RETURNING id, created_at, updated_at`,
		routine.UserID, routine.Day, string(steps),
		nullString(routine.Notes), nullString(string(routine.SkinStatus)),
	).Scan(&routine.ID, &routine.CreatedAt, &routine.UpdatedAt)
	if err != nil {
		return models.Routine{}, fmt.Errorf("upsert routine: %w", err)
	}
	return routine, nil
}

func (s *Store) GetRoutineByDay(userID int64, day string) (models.Routine, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, day, steps, notes, skin_status, created_at, updated_at
		FROM routines WHERE user_id = $1 AND day = $2`, userID, day)
	return scanRoutine(row.Scan)
}

func (s *Store) GetRoutineHistory(userID int64, sinceDay string) ([]models.Routine, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, day, steps, notes, skin_status, created_at, updated_at
		FROM routines WHERE user_id = $1 AND day >= $2
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
	var steps []byte
	var notes, skinStatus sql.NullString

	err := scan(&r.ID, &r.UserID, &r.Day, &steps, &notes, &skinStatus, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Routine{}, storage.ErrNotFound
		}
		return models.Routine{}, fmt.Errorf("scan routine: %w", err)
	}

	if err := json.Unmarshal(steps, &r.Steps); err != nil {
		return models.Routine{}, fmt.Errorf("decode steps: %w", err)
	}
	r.Notes = notes.String
	r.SkinStatus = models.SkinStatus(skinStatus.String)
	return r, nil
}
