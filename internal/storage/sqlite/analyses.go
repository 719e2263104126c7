package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bluesmoth12/Blossom/internal/models"
)

func (s *Store) CreateSkinAnalysis(analysis models.SkinAnalysis) (models.SkinAnalysis, error) {
	blob, err := json.Marshal(analysis.Analysis)
	if err != nil {
		return models.SkinAnalysis{}, fmt.Errorf("encode analysis: %w", err)
	}

	now := time.Now()
	res, err := s.db.Exec(`
		INSERT INTO skin_analyses (user_id, image, analysis, summary, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		analysis.UserID, analysis.Image, string(blob), analysis.Summary, formatTime(now))
	if err != nil {
		return models.SkinAnalysis{}, fmt.Errorf("insert skin analysis: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.SkinAnalysis{}, fmt.Errorf("read inserted analysis id: %w", err)
	}
	analysis.ID = id
	analysis.CreatedAt = now
	return analysis, nil
}

func (s *Store) GetSkinAnalysisHistory(userID int64) ([]models.SkinAnalysis, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, image, analysis, summary, created_at
		FROM skin_analyses WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query skin analysis history: %w", err)
	}
	defer rows.Close()

	var out []models.SkinAnalysis
	for rows.Next() {
		var a models.SkinAnalysis
		var blob, createdAt string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Image, &blob, &a.Summary, &createdAt); err != nil {
			return nil, fmt.Errorf("scan skin analysis: %w", err)
		}
		if err := json.Unmarshal([]byte(blob), &a.Analysis); err != nil {
			return nil, fmt.Errorf("decode analysis: %w", err)
		}
		if a.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
