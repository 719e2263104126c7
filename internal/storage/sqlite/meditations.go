package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

const meditationColumns = "id, title, description, audio_url, image_url, duration, category, level, created_at"

func (s *Store) GetFeaturedMeditation() (models.Meditation, error) {
	row := s.db.QueryRow("SELECT " + meditationColumns + " FROM meditations ORDER BY id LIMIT 1")
	return scanMeditation(row.Scan)
}

func (s *Store) GetMeditation(id int64) (models.Meditation, error) {
	row := s.db.QueryRow("SELECT "+meditationColumns+" FROM meditations WHERE id = ?", id)
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

	now := time.Now()
	res, err := s.db.Exec(`
		INSERT INTO meditation_plays (user_id, meditation_id, completed_at, is_favorite)
		VALUES (?, ?, ?, ?)`,
		play.UserID, play.MeditationID, formatTime(now), play.IsFavorite)
	if err != nil {
		return models.MeditationPlay{}, fmt.Errorf("insert meditation play: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.MeditationPlay{}, fmt.Errorf("read inserted play id: %w", err)
	}
	play.ID = id
	play.CompletedAt = now
	return play, nil
}

func (s *Store) GetRecentPlays(userID int64, limit int) ([]models.MeditationPlay, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, meditation_id, completed_at, is_favorite
		FROM meditation_plays WHERE user_id = ?
		ORDER BY completed_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent plays: %w", err)
	}
	defer rows.Close()

	var out []models.MeditationPlay
	for rows.Next() {
		var p models.MeditationPlay
		var completedAt string
		if err := rows.Scan(&p.ID, &p.UserID, &p.MeditationID, &completedAt, &p.IsFavorite); err != nil {
			return nil, fmt.Errorf("scan meditation play: %w", err)
		}
		if p.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanMeditation(scan func(...any) error) (models.Meditation, error) {
	var m models.Meditation
	var createdAt string

	err := scan(&m.ID, &m.Title, &m.Description, &m.AudioURL, &m.ImageURL, &m.Duration, &m.Category, &m.Level, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meditation{}, storage.ErrNotFound
		}
		return models.Meditation{}, fmt.Errorf("scan meditation: %w", err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Meditation{}, err
	}
	return m, nil
}
