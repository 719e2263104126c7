// Package dates owns calendar-day normalization. Every part of the
// application that compares or stores dates goes through this package,
// so a routine saved through the API and a day probed by the streak
// walk always agree on which calendar day a timestamp belongs to.
package dates

import (
	"fmt"
	"time"

	"github.com/bluesmoth12/Blossom/internal/constants"
)

// weekdayLetters is the fixed Sunday-first single-letter label table,
// indexed by time.Weekday.
var weekdayLetters = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// Day normalizes a timestamp to its YYYY-MM-DD calendar day in the
// given reference timezone. Time-of-day noise is discarded.
func Day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constants.DateFormat)
}

// Today returns the current calendar day in the given timezone.
func Today(loc *time.Location) string {
	return Day(time.Now(), loc)
}

// Parse validates a YYYY-MM-DD day string and returns its start of day
// in the given timezone.
func Parse(day string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// Valid reports whether day is a well-formed YYYY-MM-DD string.
func Valid(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil
}

// WeekdayLetter returns the single-letter weekday label for a weekday.
func WeekdayLetter(wd time.Weekday) string {
	return weekdayLetters[wd]
}
