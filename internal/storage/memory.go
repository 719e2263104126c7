package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/bluesmoth12/Blossom/internal/models"
)

// MemoryStore is an in-process Provider backed by mutex-guarded maps.
// It backs tests and the --memory development mode; nothing survives a
// restart.
type MemoryStore struct {
	mu sync.RWMutex

	users       map[int64]models.User
	routines    map[int64]models.Routine
	analyses    map[int64]models.SkinAnalysis
	meditations map[int64]models.Meditation
	plays       map[int64]models.MeditationPlay
	journal     map[int64]models.JournalEntry

	nextUserID       int64
	nextRoutineID    int64
	nextAnalysisID   int64
	nextMeditationID int64
	nextPlayID       int64
	nextJournalID    int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:            make(map[int64]models.User),
		routines:         make(map[int64]models.Routine),
		analyses:         make(map[int64]models.SkinAnalysis),
		meditations:      make(map[int64]models.Meditation),
		plays:            make(map[int64]models.MeditationPlay),
		journal:          make(map[int64]models.JournalEntry),
		nextUserID:       1,
		nextRoutineID:    1,
		nextAnalysisID:   1,
		nextMeditationID: 1,
		nextPlayID:       1,
		nextJournalID:    1,
	}
}

// Init seeds the meditation catalog.
func (s *MemoryStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.meditations) > 0 {
		return nil
	}
	now := time.Now()
	for _, m := range SeedMeditations() {
		m.ID = s.nextMeditationID
		m.CreatedAt = now
		s.meditations[m.ID] = m
		s.nextMeditationID++
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Users

func (s *MemoryStore) CreateUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return models.User{}, ErrUsernameTaken
		}
	}
	user.ID = s.nextUserID
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	s.nextUserID++
	return user, nil
}

func (s *MemoryStore) GetUser(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Routines

func (s *MemoryStore) SaveRoutine(routine models.Routine) (models.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()

	// Latest write wins for an already-logged day.
	for id, existing := range s.routines {
		if existing.UserID == routine.UserID && existing.Day == routine.Day {
			routine.ID = id
			routine.CreatedAt = existing.CreatedAt
			routine.UpdatedAt = now
			s.routines[id] = routine
			return routine, nil
		}
	}

	routine.ID = s.nextRoutineID
	routine.CreatedAt = now
	routine.UpdatedAt = now
	s.routines[routine.ID] = routine
	s.nextRoutineID++
	return routine, nil
}

func (s *MemoryStore) GetRoutineByDay(userID int64, day string) (models.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.routines {
		if r.UserID == userID && r.Day == day {
			return r, nil
		}
	}
	return models.Routine{}, ErrNotFound
}

func (s *MemoryStore) GetRoutineHistory(userID int64, sinceDay string) ([]models.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Routine
	for _, r := range s.routines {
		if r.UserID == userID && r.Day >= sinceDay {
			out = append(out, r)
		}
	}
	// Day strings sort chronologically; newest first.
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}

// Skin analyses

func (s *MemoryStore) CreateSkinAnalysis(analysis models.SkinAnalysis) (models.SkinAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	analysis.ID = s.nextAnalysisID
	analysis.CreatedAt = time.Now()
	s.analyses[analysis.ID] = analysis
	s.nextAnalysisID++
	return analysis, nil
}

func (s *MemoryStore) GetSkinAnalysisHistory(userID int64) ([]models.SkinAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SkinAnalysis
	for _, a := range s.analyses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Meditations

func (s *MemoryStore) GetFeaturedMeditation() (models.Meditation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meditations[1]
	if !ok {
		return models.Meditation{}, ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) GetAllMeditations() ([]models.Meditation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Meditation, 0, len(s.meditations))
	for _, m := range s.meditations {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetMeditation(id int64) (models.Meditation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meditations[id]
	if !ok {
		return models.Meditation{}, ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) RecordMeditationPlay(play models.MeditationPlay) (models.MeditationPlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meditations[play.MeditationID]; !ok {
		return models.MeditationPlay{}, ErrNotFound
	}
	play.ID = s.nextPlayID
	play.CompletedAt = time.Now()
	s.plays[play.ID] = play
	s.nextPlayID++
	return play, nil
}

func (s *MemoryStore) GetRecentPlays(userID int64, limit int) ([]models.MeditationPlay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MeditationPlay
	for _, p := range s.plays {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Journal

func (s *MemoryStore) CreateJournalEntry(entry models.JournalEntry) (models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	entry.ID = s.nextJournalID
	entry.CreatedAt = now
	entry.UpdatedAt = now
	s.journal[entry.ID] = entry
	s.nextJournalID++
	return entry, nil
}

func (s *MemoryStore) GetJournalEntries(userID int64) ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.JournalEntry
	for _, e := range s.journal {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetJournalEntry(userID, entryID int64) (models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.journal[entryID]
	if !ok || e.UserID != userID {
		return models.JournalEntry{}, ErrNotFound
	}
	return e, nil
}
