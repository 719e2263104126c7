package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bluesmoth12/Blossom/internal/models"
	"github.com/bluesmoth12/Blossom/internal/storage"
	"github.com/bluesmoth12/Blossom/internal/validation"
)

type createJournalEntryRequest struct {
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Mood      models.Mood `json:"mood"`
	IsPrivate *bool       `json:"isPrivate"`
}

// CreateJournalEntry handles POST /api/journal-entries. Entries are
// private unless the client says otherwise.
func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req createJournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.JournalEntry(req.Title, req.Content, req.Mood); err != nil {
		ValidationError(w, err)
		return
	}

	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	entry, err := h.store.CreateJournalEntry(models.JournalEntry{
		UserID:    UserID(r.Context()),
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		IsPrivate: isPrivate,
	})
	if err != nil {
		internalError(w, "Failed to create journal entry", err)
		return
	}

	JSON(w, http.StatusCreated, entry)
}

// GetJournalEntries handles GET /api/journal-entries, newest first.
func (h *Handler) GetJournalEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.GetJournalEntries(UserID(r.Context()))
	if err != nil {
		internalError(w, "Failed to fetch journal entries", err)
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	JSON(w, http.StatusOK, entries)
}

// GetJournalEntry handles GET /api/journal-entries/{id}. Another
// user's entry is indistinguishable from a missing one.
func (h *Handler) GetJournalEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	entry, err := h.store.GetJournalEntry(UserID(r.Context()), entryID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			Error(w, http.StatusNotFound, "Journal entry not found")
			return
		}
		internalError(w, "Failed to fetch journal entry", err)
		return
	}

	JSON(w, http.StatusOK, entry)
}
