// Package api exposes the HTTP surface: session-authenticated JSON
// endpoints for routines, consistency, skin analysis, meditations, and
// the journal, plus the auth endpoints that mint sessions.
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bluesmoth12/Blossom/internal/analysis"
	"github.com/bluesmoth12/Blossom/internal/consistency"
	"github.com/bluesmoth12/Blossom/internal/storage"
)

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	store    storage.Provider
	engine   *consistency.Engine
	analyzer analysis.Analyzer
	sessions *SessionManager
	loc      *time.Location
}

// NewHandler wires the endpoint dependencies together.
func NewHandler(store storage.Provider, sessions *SessionManager, analyzer analysis.Analyzer, loc *time.Location) *Handler {
	return &Handler{
		store:    store,
		engine:   consistency.New(store, loc),
		analyzer: analyzer,
		sessions: sessions,
		loc:      loc,
	}
}

// Router builds the full route tree.
func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(h.sessions.Require)

			r.Get("/auth/current-user", h.CurrentUser)

			r.Post("/skincare-routine", h.SaveRoutine)
			r.Get("/skincare-routine", h.GetRoutine)
			r.Get("/skincare-routine/{date}", h.GetRoutine)
			r.Get("/skincare-consistency", h.GetConsistency)

			r.Post("/analyze-skin", h.AnalyzeSkin)
			r.Get("/skin-analysis-history", h.GetAnalysisHistory)

			r.Get("/meditations/featured", h.GetFeaturedMeditation)
			r.Get("/meditations/categories", h.GetMeditationCategories)
			r.Get("/meditations/recent", h.GetRecentMeditations)
			r.Post("/meditations/history", h.RecordMeditationPlay)

			r.Post("/journal-entries", h.CreateJournalEntry)
			r.Get("/journal-entries", h.GetJournalEntries)
			r.Get("/journal-entries/{id}", h.GetJournalEntry)
		})
	})

	return r
}
