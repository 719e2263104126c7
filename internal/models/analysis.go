package models

import "time"

// SkinAssessment is the structured result of a skin-condition
// assessment run against an uploaded selfie.
type SkinAssessment struct {
	SkinCondition   string   `json:"skinCondition"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`
	Progress        string   `json:"progress,omitempty"`
}

// SkinAnalysis is a stored assessment. Image holds only a truncated
// thumbnail reference of the uploaded selfie, not the full upload.
type SkinAnalysis struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	Image     string         `json:"image"`
	Analysis  SkinAssessment `json:"analysis"`
	Summary   string         `json:"summary"`
	CreatedAt time.Time      `json:"createdAt"`
}
