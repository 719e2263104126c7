package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/bluesmoth12/Blossom/internal/models"
)

func TestCredentials(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{"valid", "alice", "hunter22", ""},
		{"missing username", "", "hunter22", "username"},
		{"long username", strings.Repeat("a", 65), "hunter22", "username"},
		{"short password", "alice", "abc", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Credentials(tt.username, tt.password)
			checkFieldError(t, err, tt.wantField)
		})
	}
}

func TestRoutineDate(t *testing.T) {
	if err := RoutineDate("2025-06-01"); err != nil {
		t.Errorf("RoutineDate() returned unexpected error: %v", err)
	}
	for _, bad := range []string{"", "June 1st", "2025-6-1", "2025-06-01T00:00:00Z"} {
		checkFieldError(t, RoutineDate(bad), "date")
	}
}

func TestRoutineSteps(t *testing.T) {
	valid := []models.RoutineStep{
		{ID: 1, Name: "Cleanse", Completed: true, TimeOfDay: models.TimeOfDayMorning},
		{ID: 2, Name: "Moisturize", TimeOfDay: models.TimeOfDayEvening},
	}
	if err := RoutineSteps(valid); err != nil {
		t.Errorf("RoutineSteps() returned unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		steps []models.RoutineStep
	}{
		{"empty", nil},
		{"unnamed step", []models.RoutineStep{{ID: 1, TimeOfDay: models.TimeOfDayMorning}}},
		{"bad timeOfDay", []models.RoutineStep{{ID: 1, Name: "Cleanse", TimeOfDay: "noon"}}},
		{"duplicate ids", []models.RoutineStep{
			{ID: 1, Name: "Cleanse", TimeOfDay: models.TimeOfDayMorning},
			{ID: 1, Name: "Tone", TimeOfDay: models.TimeOfDayMorning},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFieldError(t, RoutineSteps(tt.steps), "steps")
		})
	}
}

func TestSkinStatus(t *testing.T) {
	for _, ok := range []models.SkinStatus{"", models.SkinStatusBetter, models.SkinStatusSame, models.SkinStatusWorse} {
		if err := SkinStatus(ok); err != nil {
			t.Errorf("SkinStatus(%q) returned unexpected error: %v", ok, err)
		}
	}
	checkFieldError(t, SkinStatus("glowing"), "skinStatus")
}

func TestJournalEntry(t *testing.T) {
	if err := JournalEntry("Rough day", "Skin flared up again.", models.MoodChallenging); err != nil {
		t.Errorf("JournalEntry() returned unexpected error: %v", err)
	}

	checkFieldError(t, JournalEntry("", "content", ""), "title")
	checkFieldError(t, JournalEntry("title", "", ""), "content")
	checkFieldError(t, JournalEntry("title", "content", "ecstatic"), "mood")
}

func checkFieldError(t *testing.T, err error, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Errorf("got unexpected error: %v", err)
		}
		return
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *FieldError", err)
	}
	if fe.Field != wantField {
		t.Errorf("error field = %s, want %s", fe.Field, wantField)
	}
}
