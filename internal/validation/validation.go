// Package validation checks API input before it reaches storage.
// Malformed input is rejected with a field-level error and nothing is
// written.
package validation

import (
	"fmt"

	"github.com/bluesmoth12/Blossom/internal/dates"
	"github.com/bluesmoth12/Blossom/internal/models"
)

// FieldError describes a user-correctable problem with one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErrorf(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

const (
	maxUsernameLen = 64
	minPasswordLen = 6
	maxNotesLen    = 4000
	maxTitleLen    = 200
)

// Credentials validates a registration or login payload.
func Credentials(username, password string) error {
	if username == "" {
		return fieldErrorf("username", "is required")
	}
	if len(username) > maxUsernameLen {
		return fieldErrorf("username", "must be at most %d characters", maxUsernameLen)
	}
	if len(password) < minPasswordLen {
		return fieldErrorf("password", "must be at least %d characters", minPasswordLen)
	}
	return nil
}

// RoutineDate validates a routine date path or body value.
func RoutineDate(day string) error {
	if day == "" {
		return fieldErrorf("date", "is required")
	}
	if !dates.Valid(day) {
		return fieldErrorf("date", "must be a YYYY-MM-DD calendar day")
	}
	return nil
}

// RoutineSteps validates the checklist steps of a routine save.
func RoutineSteps(steps []models.RoutineStep) error {
	if len(steps) == 0 {
		return fieldErrorf("steps", "at least one step is required")
	}
	seen := make(map[int]bool, len(steps))
	for i, step := range steps {
		if step.Name == "" {
			return fieldErrorf("steps", "step %d has no name", i)
		}
		if step.TimeOfDay != models.TimeOfDayMorning && step.TimeOfDay != models.TimeOfDayEvening {
			return fieldErrorf("steps", "step %d has invalid timeOfDay %q", i, step.TimeOfDay)
		}
		if seen[step.ID] {
			return fieldErrorf("steps", "duplicate step id %d", step.ID)
		}
		seen[step.ID] = true
	}
	return nil
}

// SkinStatus validates the optional self-reported skin trend.
func SkinStatus(status models.SkinStatus) error {
	switch status {
	case "", models.SkinStatusBetter, models.SkinStatusSame, models.SkinStatusWorse:
		return nil
	}
	return fieldErrorf("skinStatus", "must be one of better, same, worse")
}

// RoutineNotes validates the optional free-text notes.
func RoutineNotes(notes string) error {
	if len(notes) > maxNotesLen {
		return fieldErrorf("notes", "must be at most %d characters", maxNotesLen)
	}
	return nil
}

// JournalEntry validates a journal entry payload.
func JournalEntry(title, content string, mood models.Mood) error {
	if title == "" {
		return fieldErrorf("title", "is required")
	}
	if len(title) > maxTitleLen {
		return fieldErrorf("title", "must be at most %d characters", maxTitleLen)
	}
	if content == "" {
		return fieldErrorf("content", "is required")
	}
	switch mood {
	case "", models.MoodGood, models.MoodNeutral, models.MoodChallenging:
	default:
		return fieldErrorf("mood", "must be one of good, neutral, challenging")
	}
	return nil
}
