package models

import "time"

// Meditation is one entry in the guided-meditation catalog.
type Meditation struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AudioURL    string    `json:"audioUrl"`
	ImageURL    string    `json:"imageUrl"`
	Duration    int       `json:"duration"` // minutes
	Category    string    `json:"category"`
	Level       string    `json:"level"` // "beginner", "intermediate", "advanced"
	CreatedAt   time.Time `json:"createdAt"`
}

// MeditationPlay records that a user completed a meditation.
type MeditationPlay struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	MeditationID int64     `json:"meditationId"`
	CompletedAt  time.Time `json:"completedAt"`
	IsFavorite   bool      `json:"isFavorite"`
}

// MeditationCategory is a catalog category with its meditation count.
type MeditationCategory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// RecentMeditation is a recently-played catalog entry with a
// human-readable last-played marker ("today", "yesterday", "3d ago").
type RecentMeditation struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Duration   int    `json:"duration"`
	LastPlayed string `json:"lastPlayed"`
	Color      string `json:"color"`
}
