package models

import "testing"

func TestAvailabilityDayName(t *testing.T) {
	a := &Availability{DayOfWeek: Monday}
	if got := a.DayName(); got != "Monday" {
		t.Fatalf("expected Monday, got %q", got)
	}

	bad := &Availability{DayOfWeek: DayOfWeek(9)}
	if got := bad.DayName(); got != "" {
		t.Fatalf("expected empty name for out-of-range day, got %q", got)
	}
}

func TestAvailabilityCoversTimeRange(t *testing.T) {
	a := &Availability{StartTime: "09:00", EndTime: "17:00"}

	if !a.CoversTimeRange("09:00", "17:00") {
		t.Fatal("the full window must be covered")
	}
	if !a.CoversTimeRange("10:00", "11:00") {
		t.Fatal("an interior range must be covered")
	}
	if a.CoversTimeRange("08:30", "09:30") {
		t.Fatal("a range starting before the window must not be covered")
	}
	if a.CoversTimeRange("16:30", "17:30") {
		t.Fatal("a range ending after the window must not be covered")
	}
}

func TestAvailabilityDurationInMinutes(t *testing.T) {
	a := &Availability{StartTime: "09:00", EndTime: "17:00"}
	if got := a.DurationInMinutes(); got != 480 {
		t.Fatalf("expected 480 minutes, got %d", got)
	}
}
