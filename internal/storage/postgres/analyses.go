package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/bluesmoth12/Blossom/internal/models"
)

func (s *Store) CreateSkinAnalysis(analysis models.SkinAnalysis) (models.SkinAnalysis, error) {
	blob, err := json.Marshal(analysis.Analysis)
	if err != nil {
		return models.SkinAnalysis{}, fmt.Errorf("encode analysis: %w", err)
	}

	err = s.db.QueryRow(`
		INSERT INTO skin_analyses (user_id, image, analysis, summary)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		analysis.UserID, analysis.Image, string(blob), analysis.Summary,
	).Scan(&analysis.ID, &analysis.CreatedAt)
	if err != nil {
		return models.SkinAnalysis{}, fmt.Errorf("insert skin analysis: %w", err)
	}
	return analysis, nil
}

func (s *Store) GetSkinAnalysisHistory(userID int64) ([]models.SkinAnalysis, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, image, analysis, summary, created_at
		FROM skin_analyses WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query skin analysis history: %w", err)
	}
	defer rows.Close()

	var out []models.SkinAnalysis
	for rows.Next() {
		var a models.SkinAnalysis
		var blob []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.Image, &blob, &a.Summary, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan skin analysis: %w", err)
		}
		if err := json.Unmarshal(blob, &a.Analysis); err != nil {
			return nil, fmt.Errorf("decode analysis: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
