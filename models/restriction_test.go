package models

import (
	"testing"
	"time"
)

func clockPtr(value string) *string {
	return &value
}

func restrictionDate() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func TestRestrictionIsAllDay(t *testing.T) {
	allDay := &Restriction{}
	if !allDay.IsAllDay() {
		t.Fatal("a restriction without times must be all-day")
	}

	partial := &Restriction{StartTime: clockPtr("12:00"), EndTime: clockPtr("13:00")}
	if partial.IsAllDay() {
		t.Fatal("a restriction with times must not be all-day")
	}
}

func TestRestrictionAffectsDate(t *testing.T) {
	start := restrictionDate()
	end := start.AddDate(0, 0, 4)
	r := &Restriction{StartDate: start, EndDate: end}

	if !r.AffectsDate(start) {
		t.Fatal("start date is inside the range")
	}
	if !r.AffectsDate(end) {
		t.Fatal("end date is inclusive")
	}
	if !r.AffectsDate(start.AddDate(0, 0, 2)) {
		t.Fatal("middle date is inside the range")
	}
	if r.AffectsDate(start.AddDate(0, 0, -1)) {
		t.Fatal("date before the range must not be affected")
	}
	if r.AffectsDate(end.AddDate(0, 0, 1)) {
		t.Fatal("date after the range must not be affected")
	}
}

func TestRestrictionConflictsWithTimeRange(t *testing.T) {
	date := restrictionDate()

	allDay := &Restriction{StartDate: date, EndDate: date}
	if !allDay.ConflictsWithTimeRange(date, "09:00", "10:00") {
		t.Fatal("all-day restriction must conflict with any time")
	}
	if allDay.ConflictsWithTimeRange(date.AddDate(0, 0, 1), "09:00", "10:00") {
		t.Fatal("restriction must not conflict outside its dates")
	}

	lunch := &Restriction{
		StartDate: date,
		EndDate:   date,
		StartTime: clockPtr("12:00"),
		EndTime:   clockPtr("13:00"),
	}
	if !lunch.ConflictsWithTimeRange(date, "12:30", "13:30") {
		t.Fatal("expected overlapping range to conflict")
	}
	if lunch.ConflictsWithTimeRange(date, "13:00", "14:00") {
		t.Fatal("a range starting at the restriction's end must not conflict")
	}
}

func TestRestrictionDisplayReason(t *testing.T) {
	withReason := &Restriction{Reason: "Annual leave", Type: RestrictionHoliday}
	if got := withReason.DisplayReason(); got != "Annual leave" {
		t.Fatalf("expected the free-text reason, got %q", got)
	}

	noReason := &Restriction{Type: RestrictionBreak}
	if got := noReason.DisplayReason(); got != "Break" {
		t.Fatalf("expected type label fallback, got %q", got)
	}

	unknownType := &Restriction{Type: "something-else"}
	if got := unknownType.DisplayReason(); got != "Other" {
		t.Fatalf("expected unknown types to fall back to Other, got %q", got)
	}
}
