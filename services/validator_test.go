package services

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/models"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

func TestCheckBookingRules_Valid(t *testing.T) {
	date := testDate(t)
	availability := &models.Availability{
		DayOfWeek: models.Monday,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  true,
	}
	booking := &models.Booking{
		BookingDate: date,
		StartTime:   "10:00",
		EndTime:     "11:00",
	}

	violations := CheckBookingRules(booking, availability, nil, nil)
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestCheckBookingRules_AllRulesReported(t *testing.T) {
	date := testDate(t)
	booking := &models.Booking{
		BookingDate: date,
		StartTime:   "10:00",
		EndTime:     "11:00",
	}
	restrictions := []models.Restriction{{
		StartDate: date,
		EndDate:   date,
		Type:      models.RestrictionHoliday,
	}}
	confirmed := []models.Booking{{
		Model:       gormModel(42),
		BookingDate: date,
		StartTime:   "10:30",
		EndTime:     "11:30",
		Status:      models.StatusConfirmed,
	}}

	// No availability window, an all-day restriction and a colliding
	// confirmed booking: every rule fails and every failure is reported
	violations := CheckBookingRules(booking, nil, restrictions, confirmed)
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(violations), violations)
	}
}

func TestCheckBookingRules_OutsideWindow(t *testing.T) {
	date := testDate(t)
	availability := &models.Availability{
		DayOfWeek: models.Monday,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  true,
	}
	booking := &models.Booking{
		BookingDate: date,
		StartTime:   "16:30",
		EndTime:     "17:30",
	}

	violations := CheckBookingRules(booking, availability, nil, nil)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", violations)
	}
	if !strings.Contains(violations[0], "outside of available hours") {
		t.Fatalf("unexpected violation message: %q", violations[0])
	}
}

func TestCheckBookingRules_RestrictionMessageCarriesReason(t *testing.T) {
	date := testDate(t)
	availability := &models.Availability{
		DayOfWeek: models.Monday,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  true,
	}
	booking := &models.Booking{
		BookingDate: date,
		StartTime:   "12:00",
		EndTime:     "13:00",
	}
	restrictions := []models.Restriction{{
		StartDate: date,
		EndDate:   date,
		StartTime: clockPtr("12:00"),
		EndTime:   clockPtr("13:00"),
		Reason:    "lunch",
		Type:      models.RestrictionBreak,
	}}

	violations := CheckBookingRules(booking, availability, restrictions, nil)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %v", violations)
	}
	if !strings.Contains(violations[0], "lunch") {
		t.Fatalf("expected restriction reason in message, got %q", violations[0])
	}
}

func TestCheckBookingRules_ExcludesSelfOnUpdate(t *testing.T) {
	date := testDate(t)
	availability := &models.Availability{
		DayOfWeek: models.Monday,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  true,
	}
	booking := &models.Booking{
		Model:       gormModel(7),
		BookingDate: date,
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      models.StatusConfirmed,
	}
	// The confirmed set still contains the booking being validated
	confirmed := []models.Booking{*booking}

	violations := CheckBookingRules(booking, availability, nil, confirmed)
	if len(violations) != 0 {
		t.Fatalf("a booking must not collide with itself, got %v", violations)
	}
}
