package utils

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"10:15:30", 615, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(570); got != "09:30" {
		t.Fatalf("FormatClock(570) = %q, want 09:30", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("FormatClock(0) = %q, want 00:00", got)
	}
}

func TestOverlaps_BackToBack(t *testing.T) {
	// Half-open intervals: a slot ending 11:00 does not conflict with one
	// starting 11:00
	if Overlaps("10:00", "11:00", "11:00", "12:00") {
		t.Fatal("back-to-back intervals must not overlap")
	}
	if !Overlaps("10:00", "11:00", "10:30", "11:30") {
		t.Fatal("expected overlapping intervals to overlap")
	}
	if !Overlaps("10:00", "12:00", "10:30", "11:00") {
		t.Fatal("expected contained interval to overlap")
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	intervals := []struct{ start, end string }{
		{"09:00", "10:00"},
		{"09:30", "11:00"},
		{"10:00", "10:30"},
		{"11:00", "12:00"},
		{"08:00", "17:00"},
	}

	for _, a := range intervals {
		for _, b := range intervals {
			ab := Overlaps(a.start, a.end, b.start, b.end)
			ba := Overlaps(b.start, b.end, a.start, a.end)
			if ab != ba {
				t.Fatalf("Overlaps not symmetric for [%s,%s) and [%s,%s)", a.start, a.end, b.start, b.end)
			}
		}
	}
}

func TestClockDuration(t *testing.T) {
	minutes, err := ClockDuration("09:00", "17:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 480 {
		t.Fatalf("expected 480 minutes, got %d", minutes)
	}
}

func TestDateWithin(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	if !DateWithin(start, start, end) {
		t.Fatal("start date must be within range (inclusive)")
	}
	if !DateWithin(end, start, end) {
		t.Fatal("end date must be within range (inclusive)")
	}
	if DateWithin(end.AddDate(0, 0, 1), start, end) {
		t.Fatal("date after range must not be within")
	}
	// Clock portion is ignored
	if !DateWithin(end.Add(23*time.Hour), start, end) {
		t.Fatal("clock portion must be ignored")
	}
}
