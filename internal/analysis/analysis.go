// Package analysis produces skin assessments from submitted selfie images.
// The current analyzer returns a canned assessment so the rest of the
// pipeline (persistence, history, API shape) can be exercised without a
// vision model behind it.
package analysis

import (
	"strings"

	"github.com/bluesmoth12/Blossom/internal/models"
)

// thumbnailBase64Len caps how much image payload is persisted per analysis.
const thumbnailBase64Len = 200

// Analyzer assesses a skin selfie and returns structured feedback.
type Analyzer interface {
	Analyze(imageBase64 string) (models.SkinAssessment, error)
}

// MockAnalyzer returns a fixed assessment regardless of input.
type MockAnalyzer struct{}

func NewMockAnalyzer() *MockAnalyzer { return &MockAnalyzer{} }

func (MockAnalyzer) Analyze(imageBase64 string) (models.SkinAssessment, error) {
	return models.SkinAssessment{
		SkinCondition: "Mild inflammation with some acne",
		Concerns: []string{
			"Redness around cheeks",
			"Several small whiteheads",
			"Some dryness on forehead",
		},
		Recommendations: []string{
			"Use a gentle, non-foaming cleanser twice daily",
			"Apply a light, oil-free moisturizer",
			"Consider a product with salicylic acid for the whiteheads",
			"Avoid touching or picking at active breakouts",
		},
		Progress: "Some improvement in overall skin tone compared to typical acne patterns",
	}, nil
}

// ExtractBase64 strips the data URL prefix from an image, if present.
func ExtractBase64(image string) string {
	if strings.Contains(image, "data:image") {
		if _, data, ok := strings.Cut(image, ","); ok && data != "" {
			return data
		}
	}
	return image
}

// Thumbnail truncates an image payload to a short preview so stored
// history rows stay small. Data URLs keep their prefix intact.
func Thumbnail(image string) string {
	if strings.Contains(image, "data:image") {
		prefix, data, ok := strings.Cut(image, ",")
		if ok && len(data) > thumbnailBase64Len {
			return prefix + "," + data[:thumbnailBase64Len] + "..."
		}
		return image
	}
	if len(image) > thumbnailBase64Len {
		return image[:thumbnailBase64Len] + "..."
	}
	return image
}
