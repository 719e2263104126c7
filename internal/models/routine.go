package models

import "time"

// TimeOfDay says whether a routine step belongs to the morning or
// evening half of the day.
type TimeOfDay string

const (
	TimeOfDayMorning TimeOfDay = "morning"
	TimeOfDayEvening TimeOfDay = "evening"
)

// SkinStatus is the user's self-reported skin trend for a day.
type SkinStatus string

const (
	SkinStatusBetter SkinStatus = "better"
	SkinStatusSame   SkinStatus = "same"
	SkinStatusWorse  SkinStatus = "worse"
)

// RoutineStep is one checklist item within a day's routine. IDs are
// per-routine and assigned client-side (max existing id + 1).
type RoutineStep struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
}

// Routine is a single day's skincare log for a user. Day is a
// YYYY-MM-DD string normalized to the configured reference timezone;
// at most one routine exists per (UserID, Day) and saves for an
// existing day replace the stored contents.
type Routine struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"userId"`
	Day        string        `json:"date"`
	Steps      []RoutineStep `json:"steps"`
	Notes      string        `json:"notes,omitempty"`
	SkinStatus SkinStatus    `json:"skinStatus,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// DayStatus is one cell of the rolling seven-day completion view. Day
// holds the single-letter weekday label shown by the client.
type DayStatus struct {
	Day       string `json:"day"`
	Completed bool   `json:"completed"`
}

// Consistency is the derived streak and weekly-completion view. It is
// computed on demand and never persisted.
type Consistency struct {
	CompletedDays int         `json:"completedDays"`
	WeeklyGoal    int         `json:"weeklyGoal"`
	Streak        int         `json:"streak"`
	LastSevenDays []DayStatus `json:"lastSevenDays"`
}
