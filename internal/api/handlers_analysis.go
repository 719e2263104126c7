package api

import (
	"encoding/json"
	"net/http"

	"github.com/bluesmoth12/Blossom/internal/analysis"
	"github.com/bluesmoth12/Blossom/internal/models"
)

type analyzeSkinRequest struct {
	Image string `json:"image"`
}

// AnalyzeSkin handles POST /api/analyze-skin. Only a truncated
// thumbnail of the upload is persisted with the assessment.
func (h *Handler) AnalyzeSkin(w http.ResponseWriter, r *http.Request) {
	var req analyzeSkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Image == "" {
		Error(w, http.StatusBadRequest, "No image provided")
		return
	}

	assessment, err := h.analyzer.Analyze(analysis.ExtractBase64(req.Image))
	if err != nil {
		internalError(w, "Failed to analyze skin image", err)
		return
	}

	_, err = h.store.CreateSkinAnalysis(models.SkinAnalysis{
		UserID:   UserID(r.Context()),
		Image:    analysis.Thumbnail(req.Image),
		Analysis: assessment,
		Summary:  assessment.SkinCondition,
	})
	if err != nil {
		internalError(w, "Failed to analyze skin image", err)
		return
	}

	JSON(w, http.StatusOK, assessment)
}

// GetAnalysisHistory handles GET /api/skin-analysis-history.
func (h *Handler) GetAnalysisHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.GetSkinAnalysisHistory(UserID(r.Context()))
	if err != nil {
		internalError(w, "Failed to fetch skin analysis history", err)
		return
	}
	if history == nil {
		history = []models.SkinAnalysis{}
	}
	JSON(w, http.StatusOK, history)
}
