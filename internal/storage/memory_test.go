package storage

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bluesmoth12/Blossom/internal/models"
)

func setupMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateUserAndLookup(t *testing.T) {
	store := setupMemoryStore(t)

	created, err := store.CreateUser(models.User{Username: "alice", PasswordHash: "x", FirstName: "Alice"})
	if err != nil {
		t.Fatalf("CreateUser() returned unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("CreateUser() did not assign an ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreateUser() did not set CreatedAt")
	}

	byID, err := store.GetUser(created.ID)
	if err != nil {
		t.Fatalf("GetUser() returned unexpected error: %v", err)
	}
	byName, err := store.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("GetUserByUsername() returned unexpected error: %v", err)
	}
	if diff := cmp.Diff(byID, byName); diff != "" {
		t.Errorf("lookups disagree (-byID +byName):\n%s", diff)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := setupMemoryStore(t)

	if _, err := store.CreateUser(models.User{Username: "alice", PasswordHash: "x"}); err != nil {
		t.Fatalf("CreateUser() returned unexpected error: %v", err)
	}
	_, err := store.CreateUser(models.User{Username: "alice", PasswordHash: "y"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate CreateUser() error = %v, want ErrUsernameTaken", err)
	}
}

func TestSaveRoutineScenario(t *testing.T) {
	store := setupMemoryStore(t)

	saved, err := store.SaveRoutine(models.Routine{
		UserID: 1,
		Day:    "2025-06-01",
		Steps: []models.RoutineStep{
			{ID: 1, Name: "Cleanse", Completed: true, TimeOfDay: models.TimeOfDayMorning},
		},
	})
	if err != nil {
		t.Fatalf("SaveRoutine() returned unexpected error: %v", err)
	}
	if saved.ID == 0 {
		t.Error("SaveRoutine() did not assign an ID")
	}

	got, err := store.GetRoutineByDay(1, "2025-06-01")
	if err != nil {
		t.Fatalf("GetRoutineByDay() returned unexpected error: %v", err)
	}
	if len(got.Steps) != 1 || !got.Steps[0].Completed {
		t.Errorf("read-back steps = %+v, want one completed step", got.Steps)
	}
	if got.Steps[0].Name != "Cleanse" {
		t.Errorf("step name = %s, want Cleanse", got.Steps[0].Name)
	}
}

func TestSaveRoutineUpsertLatestWins(t *testing.T) {
	store := setupMemoryStore(t)

	first, err := store.SaveRoutine(models.Routine{
		UserID: 1,
		Day:    "2025-06-01",
		Steps:  []models.RoutineStep{{ID: 1, Name: "Cleanse", TimeOfDay: models.TimeOfDayMorning}},
		Notes:  "first save",
	})
	if err != nil {
		t.Fatalf("SaveRoutine() returned unexpected error: %v", err)
	}

	second, err := store.SaveRoutine(models.Routine{
		UserID: 1,
		Day:    "2025-06-01",
		Steps: []models.RoutineStep{
			{ID: 1, Name: "Cleanse", Completed: true, TimeOfDay: models.TimeOfDayMorning},
			{ID: 2, Name: "Moisturize", TimeOfDay: models.TimeOfDayEvening},
		},
		Notes:      "second save",
		SkinStatus: models.SkinStatusBetter,
	})
	if err != nil {
		t.Fatalf("second SaveRoutine() returned unexpected error: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %d != %d", second.ID, first.ID)
	}

	got, err := store.GetRoutineByDay(1, "2025-06-01")
	if err != nil {
		t.Fatalf("GetRoutineByDay() returned unexpected error: %v", err)
	}
	if got.Notes != "second save" {
		t.Errorf("Notes = %q, want the latest write", got.Notes)
	}
	if len(got.Steps) != 2 {
		t.Errorf("len(Steps) = %d, want 2", len(got.Steps))
	}

	history, err := store.GetRoutineHistory(1, "2025-05-01")
	if err != nil {
		t.Fatalf("GetRoutineHistory() returned unexpected error: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history has %d rows for one day, want 1", len(history))
	}
}

func TestGetRoutineByDayNotFound(t *testing.T) {
	store := setupMemoryStore(t)

	_, err := store.GetRoutineByDay(1, "2025-06-01")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRoutineByDay() error = %v, want ErrNotFound", err)
	}
}

func TestGetRoutineHistoryWindowAndOrder(t *testing.T) {
	store := setupMemoryStore(t)

	for _, day := range []string{"2025-06-01", "2025-06-03", "2025-05-01", "2025-06-02"} {
		if _, err := store.SaveRoutine(models.Routine{UserID: 1, Day: day}); err != nil {
			t.Fatalf("SaveRoutine(%s) returned unexpected error: %v", day, err)
		}
	}
	// Another user's routine must not leak in.
	if _, err := store.SaveRoutine(models.Routine{UserID: 2, Day: "2025-06-03"}); err != nil {
		t.Fatalf("SaveRoutine() returned unexpected error: %v", err)
	}

	history, err := store.GetRoutineHistory(1, "2025-05-15")
	if err != nil {
		t.Fatalf("GetRoutineHistory() returned unexpected error: %v", err)
	}

	var days []string
	for _, r := range history {
		days = append(days, r.Day)
	}
	want := []string{"2025-06-03", "2025-06-02", "2025-06-01"}
	if diff := cmp.Diff(want, days); diff != "" {
		t.Errorf("history days mismatch (-want +got):\n%s", diff)
	}
}

func TestMeditationSeedAndPlays(t *testing.T) {
	store := setupMemoryStore(t)

	all, err := store.GetAllMeditations()
	if err != nil {
		t.Fatalf("GetAllMeditations() returned unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("seed catalog has %d meditations, want 3", len(all))
	}

	featured, err := store.GetFeaturedMeditation()
	if err != nil {
		t.Fatalf("GetFeaturedMeditation() returned unexpected error: %v", err)
	}
	if featured.ID != 1 {
		t.Errorf("featured meditation ID = %d, want 1", featured.ID)
	}

	if _, err := store.RecordMeditationPlay(models.MeditationPlay{UserID: 1, MeditationID: 999}); !errors.Is(err, ErrNotFound) {
		t.Errorf("play of unknown meditation error = %v, want ErrNotFound", err)
	}

	for _, id := range []int64{1, 2, 3, 1} {
		if _, err := store.RecordMeditationPlay(models.MeditationPlay{UserID: 1, MeditationID: id}); err != nil {
			t.Fatalf("RecordMeditationPlay() returned unexpected error: %v", err)
		}
	}
	recent, err := store.GetRecentPlays(1, 3)
	if err != nil {
		t.Fatalf("GetRecentPlays() returned unexpected error: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("len(recent) = %d, want 3 (limit)", len(recent))
	}
}

func TestJournalOwnership(t *testing.T) {
	store := setupMemoryStore(t)

	entry, err := store.CreateJournalEntry(models.JournalEntry{
		UserID: 1, Title: "Day one", Content: "Started the routine.", IsPrivate: true,
	})
	if err != nil {
		t.Fatalf("CreateJournalEntry() returned unexpected error: %v", err)
	}

	if _, err := store.GetJournalEntry(1, entry.ID); err != nil {
		t.Errorf("owner GetJournalEntry() returned unexpected error: %v", err)
	}
	if _, err := store.GetJournalEntry(2, entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user's GetJournalEntry() error = %v, want ErrNotFound", err)
	}
}
