package dates

import (
	"testing"
	"time"
)

func TestDayNormalizesTimeOfDayNoise(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"midnight", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "2025-06-01"},
		{"midday", time.Date(2025, 6, 1, 12, 34, 56, 0, time.UTC), "2025-06-01"},
		{"last instant", time.Date(2025, 6, 1, 23, 59, 59, 999000000, time.UTC), "2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Day(tt.in, time.UTC); got != tt.want {
				t.Errorf("Day() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDayRespectsReferenceTimezone(t *testing.T) {
	// 2025-06-01 23:30 UTC is already 2025-06-02 in UTC+2.
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)

	if got := Day(in, time.UTC); got != "2025-06-01" {
		t.Errorf("Day(UTC) = %s, want 2025-06-01", got)
	}
	if got := Day(in, loc); got != "2025-06-02" {
		t.Errorf("Day(UTC+2) = %s, want 2025-06-02", got)
	}
}

func TestParseRejectsMalformedDays(t *testing.T) {
	for _, bad := range []string{"", "2025-6-1", "June 1", "2025-13-01", "2025-06-01T10:00:00Z"} {
		if _, err := Parse(bad, time.UTC); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
		if Valid(bad) {
			t.Errorf("Valid(%q) = true, want false", bad)
		}
	}
}

func TestParseRoundTrips(t *testing.T) {
	got, err := Parse("2025-06-01", time.UTC)
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if Day(got, time.UTC) != "2025-06-01" {
		t.Errorf("round trip = %s, want 2025-06-01", Day(got, time.UTC))
	}
}

func TestWeekdayLetter(t *testing.T) {
	// 2025-06-01 is a Sunday.
	start, _ := Parse("2025-06-01", time.UTC)

	want := []string{"S", "M", "T", "W", "T", "F", "S"}
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		if got := WeekdayLetter(d.Weekday()); got != want[i] {
			t.Errorf("WeekdayLetter(%s) = %s, want %s", d.Weekday(), got, want[i])
		}
	}
}
