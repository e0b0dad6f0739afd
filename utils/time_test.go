package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-10")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 10 {
		t.Errorf("ParseDate = %v, want 2025-06-10", got)
	}

	if _, err := ParseDate("10/06/2025"); err == nil {
		t.Error("ParseDate accepted a non ISO date")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"same day", "2025-06-10", "2025-06-10", 0},
		{"forward", "2025-06-10", "2025-06-13", 3},
		{"backward", "2025-06-13", "2025-06-10", -3},
		{"across month", "2025-06-29", "2025-07-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, _ := ParseDate(tt.from)
			to, _ := ParseDate(tt.to)
			if got := DaysBetween(from, to); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTruncateToDate(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2025, 6, 10, 23, 45, 12, 0, loc)

	got := TruncateToDate(in)
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TruncateToDate = %v, want %v", got, want)
	}
}
