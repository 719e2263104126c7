package storage

import "github.com/bluesmoth12/Blossom/internal/models"

// Provider is the capability set every storage backend implements.
// Backends are selected by explicit injection at startup; handlers and
// the consistency engine only ever see this interface.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Users
	CreateUser(user models.User) (models.User, error)
	GetUser(id int64) (models.User, error)
	GetUserByUsername(username string) (models.User, error)

	// Routines. SaveRoutine upserts on (UserID, Day) with latest write
	// wins; GetRoutineByDay returns ErrNotFound when the day has no
	// record; GetRoutineHistory returns records with Day >= sinceDay,
	// newest first.
	SaveRoutine(routine models.Routine) (models.Routine, error)
	GetRoutineByDay(userID int64, day string) (models.Routine, error)
	GetRoutineHistory(userID int64, sinceDay string) ([]models.Routine, error)

	// Skin analyses
	CreateSkinAnalysis(analysis models.SkinAnalysis) (models.SkinAnalysis, error)
	GetSkinAnalysisHistory(userID int64) ([]models.SkinAnalysis, error)

	// Meditations
	GetFeaturedMeditation() (models.Meditation, error)
	GetAllMeditations() ([]models.Meditation, error)
	RecordMeditationPlay(play models.MeditationPlay) (models.MeditationPlay, error)
	GetRecentPlays(userID int64, limit int) ([]models.MeditationPlay, error)
	GetMeditation(id int64) (models.Meditation, error)

	// Journal
	CreateJournalEntry(entry models.JournalEntry) (models.JournalEntry, error)
	GetJournalEntries(userID int64) ([]models.JournalEntry, error)
	GetJournalEntry(userID int64, entryID int64) (models.JournalEntry, error)
}
