package models

import "time"

// Mood is the self-reported mood attached to a journal entry.
type Mood string

const (
	MoodGood        Mood = "good"
	MoodNeutral     Mood = "neutral"
	MoodChallenging Mood = "challenging"
)

// JournalEntry is a private mood-journal entry.
type JournalEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood,omitempty"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
