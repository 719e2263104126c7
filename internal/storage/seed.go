package storage

import "github.com/bluesmoth12/Blossom/internal/models"

// SeedMeditations is the starter guided-meditation catalog. Backends
// insert it on first init so the catalog endpoints are never empty.
func SeedMeditations() []models.Meditation {
	return []models.Meditation{
		{
			Title:       "Stress Relief for Clearer Skin",
			Description: "This meditation helps reduce stress hormones that can trigger skin problems. Practice regularly for best results.",
			AudioURL:    "/assets/meditations/stress-relief.mp3",
			ImageURL:    "https://images.unsplash.com/photo-1520206183501-b80df61043c2?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=400",
			Duration:    8,
			Category:    "stress-relief",
			Level:       "beginner",
		},
		{
			Title:       "Morning Skin Positivity",
			Description: "Start your day with positive affirmations about your skin and body.",
			AudioURL:    "/assets/meditations/morning-positivity.mp3",
			ImageURL:    "https://images.unsplash.com/photo-1519834785169-98be25ec3f84?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=400",
			Duration:    5,
			Category:    "self-acceptance",
			Level:       "beginner",
		},
		{
			Title:       "Bedtime Relaxation",
			Description: "Calm your mind and body before sleep, promoting better rest and skin recovery.",
			AudioURL:    "/assets/meditations/bedtime-relaxation.mp3",
			ImageURL:    "https://images.unsplash.com/photo-1511295742362-92c96b055702?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&h=400",
			Duration:    10,
			Category:    "better-sleep",
			Level:       "beginner",
		},
	}
}

// MeditationCategoryInfo maps catalog category keys to their display
// metadata. Order matters: category IDs are assigned positionally.
type MeditationCategoryInfo struct {
	Key   string
	Name  string
	Icon  string
	Color string
}

// MeditationCategories is the fixed catalog category set.
var MeditationCategories = []MeditationCategoryInfo{
	{Key: "stress-relief", Name: "Stress Relief", Icon: "mental-health", Color: "primary"},
	{Key: "self-acceptance", Name: "Self-Acceptance", Icon: "emotion-happy", Color: "secondary"},
	{Key: "better-sleep", Name: "Better Sleep", Icon: "sleep", Color: "accent"},
	{Key: "focus-clarity", Name: "Focus & Clarity", Icon: "focus", Color: "primary-light"},
}

// MeditationCategoryColor returns the accent color for a category key.
func MeditationCategoryColor(key string) string {
	for _, c := range MeditationCategories {
		if c.Key == key {
			return c.Color
		}
	}
	return "primary"
}
