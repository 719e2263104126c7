package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bluesmoth12/Blossom/internal/constants"
	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

// GetFeaturedMeditation handles GET /api/meditations/featured.
func (h *Handler) GetFeaturedMeditation(w http.ResponseWriter, r *http.Request) {
	featured, err := h.store.GetFeaturedMeditation()
	if err != nil {
		internalError(w, "Failed to fetch featured meditation", err)
		return
	}
	JSON(w, http.StatusOK, featured)
}

// GetMeditationCategories handles GET /api/meditations/categories. The
// category set is fixed; only the per-category counts come from the
// catalog.
func (h *Handler) GetMeditationCategories(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.GetAllMeditations()
	if err != nil {
		internalError(w, "Failed to fetch meditation categories", err)
		return
	}

	counts := make(map[string]int, len(all))
	for _, m := range all {
		counts[m.Category]++
	}

	categories := make([]models.MeditationCategory, 0, len(storage.MeditationCategories))
	for i, c := range storage.MeditationCategories {
		categories = append(categories, models.MeditationCategory{
			ID:    i + 1,
			Name:  c.Name,
			Icon:  c.Icon,
			Count: counts[c.Key],
			Color: c.Color,
		})
	}
	JSON(w, http.StatusOK, categories)
}

// GetRecentMeditations handles GET /api/meditations/recent.
func (h *Handler) GetRecentMeditations(w http.ResponseWriter, r *http.Request) {
	plays, err := h.store.GetRecentPlays(UserID(r.Context()), constants.RecentMeditationLimit)
	if err != nil {
		internalError(w, "Failed to fetch recent meditations", err)
		return
	}

	recent := make([]models.RecentMeditation, 0, len(plays))
	for _, play := range plays {
		m, err := h.store.GetMeditation(play.MeditationID)
		if err != nil {
			internalError(w, "Failed to fetch recent meditations", err)
			return
		}
		recent = append(recent, models.RecentMeditation{
			ID:         m.ID,
			Title:      m.Title,
			Duration:   m.Duration,
			LastPlayed: lastPlayedLabel(play.CompletedAt),
			Color:      storage.MeditationCategoryColor(m.Category),
		})
	}
	JSON(w, http.StatusOK, recent)
}

type recordPlayRequest struct {
	MeditationID int64 `json:"meditationId"`
	IsFavorite   bool  `json:"isFavorite"`
}

// RecordMeditationPlay handles POST /api/meditations/history.
func (h *Handler) RecordMeditationPlay(w http.ResponseWriter, r *http.Request) {
	var req recordPlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MeditationID == 0 {
		Error(w, http.StatusBadRequest, "meditationId is required")
		return
	}

	play, err := h.store.RecordMeditationPlay(models.MeditationPlay{
		UserID:       UserID(r.Context()),
		MeditationID: req.MeditationID,
		IsFavorite:   req.IsFavorite,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			Error(w, http.StatusNotFound, "Meditation not found")
			return
		}
		internalError(w, "Failed to record meditation", err)
		return
	}

	JSON(w, http.StatusCreated, play)
}

// lastPlayedLabel renders a completion time as the relative marker
// shown by the client ("today", "yesterday", "3d ago").
func lastPlayedLabel(completedAt time.Time) string {
	daysAgo := int(time.Since(completedAt).Hours() / 24)
	switch {
	case daysAgo <= 0:
		return "today"
	case daysAgo == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%dd ago", daysAgo)
	}
}
