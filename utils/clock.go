package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a wall-clock "HH:MM" (or "HH:MM:SS") string into minutes
// since midnight. Seconds are ignored.
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", value)
	}

	return hours*60 + minutes, nil
}

// FormatClock formats minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) overlap. Zero-padded "HH:MM" strings compare correctly
// lexicographically, so this works directly on stored clock values.
// Back-to-back intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ClockDuration returns the number of minutes between two clock values.
func ClockDuration(start, end string) (int, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return endMin - startMin, nil
}

// DateOnly truncates a time to midnight, dropping the clock portion.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two times fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DateWithin reports whether date falls inside [start, end], inclusive on
// both ends. Clock portions are ignored.
func DateWithin(date, start, end time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(start)) && !d.After(DateOnly(end))
}
