package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

const meditationColumns = "id, title, description, audio_url, image_url, duration, category, level, created_at"

func (s *Store) GetFeaturedMeditation() (models.Meditation, error) {
	row := s.db.QueryRow("SELECT " + meditationColumns + " FROM meditations ORDER BY id LIMIT 1")
	return scanMeditation(row.Scan)
}

func (s *Store) GetMeditation(id int64) (models.Meditation, error) {
	row := s.db.QueryRow("SELECT "+meditationColumns+" FROM meditations WHERE id = $1", id)
	return scanMeditation(row.Scan)
}

func (s *Store) GetAllMeditations() ([]models.Meditation, error) {
	rows, err := s.db.Query("SELECT " + meditationColumns + " FROM meditations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query meditations: %w", err)
	}
	defer rows.Close()

	var out []models.Meditation
	for rows.Next() {
		m, err := scanMeditation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) RecordMeditationPlay(play models.MeditationPlay) (models.MeditationPlay, error) {
	if _, err := s.GetMeditation(play.MeditationID); err != nil {
		return models.MeditationPlay{}, err
	}

	err := s.db.QueryRow(`
		INSERT INTO meditation_plays (user_id, meditation_id, is_favorite)
		VALUES ($1, $2, $3)
		RETURNING id, completed_at`,
		play.UserID, play.MeditationID, play.IsFavorite,
	).Scan(&play.ID, &play.CompletedAt)
	if err != nil {
		return models.MeditationPlay{}, fmt.Errorf("insert meditation play: %w", err)
	}
	return play, nil
}

func (s *Store) GetRecentPlays(userID int64, limit int) ([]models.MeditationPlay, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, meditation_id, completed_at, is_favorite
		FROM meditation_plays WHERE user_id = $1
		ORDER BY completed_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent plays: %w", err)
	}
	defer rows.Close()

	var out []models.MeditationPlay
	for rows.Next() {
		var p models.MeditationPlay
		if err := rows.Scan(&p.ID, &p.UserID, &p.MeditationID, &p.CompletedAt, &p.IsFavorite); err != nil {
			return nil, fmt.Errorf("scan meditation play: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanMeditation(scan func(...any) error) (models.Meditation, error) {
	var m models.Meditation
	err := scan(&m.ID, &m.Title, &m.Description, &m.AudioURL, &m.ImageURL, &m.Duration, &m.Category, &m.Level, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meditation{}, storage.ErrNotFound
		}
		return models.Meditation{}, fmt.Errorf("scan meditation: %w", err)
	}
	return m, nil
}
