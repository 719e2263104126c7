package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bluesmoth12/Blossom/internal/dates"
	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
	"github.com/bluesmoth12/Blossom/internal/validation"
)

type saveRoutineRequest struct {
	Date       string               `json:"date"`
	Steps      []models.RoutineStep `json:"steps"`
	Notes      string               `json:"notes"`
	SkinStatus models.SkinStatus    `json:"skinStatus"`
}

// SaveRoutine handles POST /api/skincare-routine. The save is an
// upsert: a second save for the same day replaces the stored routine.
func (h *Handler) SaveRoutine(w http.ResponseWriter, r *http.Request) {
	var req saveRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.RoutineDate(req.Date); err != nil {
		ValidationError(w, err)
		return
	}
	if err := validation.RoutineSteps(req.Steps); err != nil {
		ValidationError(w, err)
		return
	}
	if err := validation.SkinStatus(req.SkinStatus); err != nil {
		ValidationError(w, err)
		return
	}
	if err := validation.RoutineNotes(req.Notes); err != nil {
		ValidationError(w, err)
		return
	}

	day, err := dates.Parse(req.Date, h.loc)
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	routine, err := h.store.SaveRoutine(models.Routine{
		UserID:     UserID(r.Context()),
		Day:        dates.Day(day, h.loc),
		Steps:      req.Steps,
		Notes:      req.Notes,
		SkinStatus: req.SkinStatus,
	})
	if err != nil {
		internalError(w, "Failed to save skincare routine", err)
		return
	}

	JSON(w, http.StatusOK, routine)
}

// GetRoutine handles GET /api/skincare-routine and
// GET /api/skincare-routine/{date}. An absent routine is not an error:
// the client gets a bare {"date": ...} placeholder with HTTP 200.
func (h *Handler) GetRoutine(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "date")
	if day == "" {
		day = dates.Today(h.loc)
	} else if err := validation.RoutineDate(day); err != nil {
		ValidationError(w, err)
		return
	}

	routine, err := h.store.GetRoutineByDay(UserID(r.Context()), day)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			JSON(w, http.StatusOK, map[string]string{"date": day})
			return
		}
		internalError(w, "Failed to fetch skincare routine", err)
		return
	}

	JSON(w, http.StatusOK, routine)
}

// GetConsistency handles GET /api/skincare-consistency.
func (h *Handler) GetConsistency(w http.ResponseWriter, r *http.Request) {
	view, err := h.engine.View(UserID(r.Context()))
	if err != nil {
		internalError(w, "Failed to fetch skincare consistency", err)
		return
	}
	JSON(w, http.StatusOK, view)
}
