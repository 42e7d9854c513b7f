package services

import (
	"reflect"
	"testing"
)

func TestGenerateTimeSlots_Boundaries(t *testing.T) {
	slots, err := GenerateTimeSlots("09:00", "17:00", 30, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00" || slots[0].EndTime != "10:00" {
		t.Fatalf("expected first slot 09:00-10:00, got %s-%s", slots[0].StartTime, slots[0].EndTime)
	}
	last := slots[len(slots)-1]
	if last.StartTime != "16:00" || last.EndTime != "17:00" {
		t.Fatalf("expected last slot 16:00-17:00, got %s-%s", last.StartTime, last.EndTime)
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	first, err := GenerateTimeSlots("08:00", "12:00", 15, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GenerateTimeSlots("08:00", "12:00", 15, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical inputs")
	}
}

func TestGenerateTimeSlots_BackToBack(t *testing.T) {
	slots, err := GenerateTimeSlots("09:00", "12:00", 60, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	for i := 0; i < len(slots)-1; i++ {
		if slots[i].EndTime != slots[i+1].StartTime {
			t.Fatalf("expected consecutive slots to share a boundary, got %s then %s", slots[i].EndTime, slots[i+1].StartTime)
		}
	}
}

func TestGenerateTimeSlots_DurationExceedsWindow(t *testing.T) {
	slots, err := GenerateTimeSlots("09:00", "09:30", 30, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestGenerateTimeSlots_InvalidInputs(t *testing.T) {
	if _, err := GenerateTimeSlots("9am", "17:00", 30, 60); err == nil {
		t.Fatal("expected error for malformed start time")
	}
	if _, err := GenerateTimeSlots("09:00", "17:00", 0, 60); err == nil {
		t.Fatal("expected error for zero interval")
	}
	if _, err := GenerateTimeSlots("09:00", "17:00", 30, -15); err == nil {
		t.Fatal("expected error for negative duration")
	}
}
