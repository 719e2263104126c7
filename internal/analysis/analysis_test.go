package analysis

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMockAnalyzer(t *testing.T) {
	got, err := NewMockAnalyzer().Analyze("irrelevant")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.SkinCondition == "" {
		t.Error("expected a skin condition")
	}
	if len(got.Concerns) == 0 || len(got.Recommendations) == 0 {
		t.Error("expected concerns and recommendations to be populated")
	}

	again, err := NewMockAnalyzer().Analyze("different input")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("assessment should not depend on input (-first +second):\n%s", diff)
	}
}

func TestExtractBase64(t *testing.T) {
	if got := ExtractBase64("data:image/jpeg;base64,abc123"); got != "abc123" {
		t.Errorf("ExtractBase64 data URL = %q, want %q", got, "abc123")
	}
	if got := ExtractBase64("rawpayload"); got != "rawpayload" {
		t.Errorf("ExtractBase64 raw = %q, want unchanged", got)
	}
}

func TestThumbnail(t *testing.T) {
	long := strings.Repeat("a", 300)

	got := Thumbnail("data:image/jpeg;base64," + long)
	want := "data:image/jpeg;base64," + strings.Repeat("a", 200) + "..."
	if got != want {
		t.Errorf("Thumbnail data URL = %q, want %q", got, want)
	}

	short := "data:image/png;base64," + strings.Repeat("b", 50)
	if got := Thumbnail(short); got != short {
		t.Errorf("Thumbnail short data URL = %q, want unchanged", got)
	}

	if got := Thumbnail(long); got != strings.Repeat("a", 200)+"..." {
		t.Errorf("Thumbnail raw = %q, want truncated", got)
	}
}
