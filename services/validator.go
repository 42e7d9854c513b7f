package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/models"
	"github.com/meinhoongagan/booking-platform/utils"
)

const (
	violationOutsideAvailability = "Booking time is outside of available hours."
	violationBookingConflict     = "Booking conflicts with another confirmed booking."
)

// ValidateBooking checks a proposed booking against the provider's current
// availability, restrictions and confirmed bookings and returns one message
// per violated rule. An empty list means the booking is valid. Called before
// a pending booking is persisted and again before it is confirmed, since a
// slot that was free at request time may have been taken since.
func ValidateBooking(booking *models.Booking) ([]string, error) {
	return ValidateBookingTx(db.DB, booking)
}

// ValidateBookingTx is ValidateBooking reading through tx, so confirmation
// can re-check against the confirmed-booking set inside its transaction.
func ValidateBookingTx(tx *gorm.DB, booking *models.Booking) ([]string, error) {
	day := utils.DateOnly(booking.BookingDate)

	var availability *models.Availability
	var window models.Availability
	err := tx.
		Where("provider_id = ? AND day_of_week = ? AND is_active = ?", booking.ProviderID, int(day.Weekday()), true).
		First(&window).Error
	if err == nil {
		availability = &window
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var restrictions []models.Restriction
	if err := tx.
		Where("provider_id = ? AND start_date <= ? AND end_date >= ?", booking.ProviderID, day, day).
		Find(&restrictions).Error; err != nil {
		return nil, err
	}

	var confirmed []models.Booking
	query := tx.
		Where("provider_id = ? AND booking_date = ? AND status = ?", booking.ProviderID, day, models.StatusConfirmed)
	if booking.ID != 0 {
		query = query.Where("id <> ?", booking.ID)
	}
	if err := query.Find(&confirmed).Error; err != nil {
		return nil, err
	}

	return CheckBookingRules(booking, availability, restrictions, confirmed), nil
}

// CheckBookingRules evaluates every rule against pre-fetched rows. All rules
// are evaluated, no short-circuit: form callers need every violation at once
// to render field-level feedback.
func CheckBookingRules(
	booking *models.Booking,
	availability *models.Availability,
	restrictions []models.Restriction,
	confirmed []models.Booking,
) []string {
	violations := []string{}

	if availability == nil || !availability.IsActive || !availability.CoversTimeRange(booking.StartTime, booking.EndTime) {
		violations = append(violations, violationOutsideAvailability)
	}

	for i := range restrictions {
		if restrictions[i].ConflictsWithTimeRange(booking.BookingDate, booking.StartTime, booking.EndTime) {
			violations = append(violations, fmt.Sprintf("Booking conflicts with a restriction: %s.", restrictions[i].DisplayReason()))
			break
		}
	}

	for i := range confirmed {
		if confirmed[i].ID == booking.ID && booking.ID != 0 {
			continue
		}
		if confirmed[i].Overlaps(booking.StartTime, booking.EndTime) {
			violations = append(violations, violationBookingConflict)
			break
		}
	}

	return violations
}

// RestrictionCoversConfirmedBooking reports whether creating or updating the
// given restriction would land on an existing confirmed booking. Conflicts
// run both ways: a restriction cannot be placed over a confirmed booking any
// more than a booking can be confirmed over a restriction.
func RestrictionCoversConfirmedBooking(restriction *models.Restriction) (bool, error) {
	var bookings []models.Booking
	if err := db.DB.
		Where("provider_id = ? AND booking_date BETWEEN ? AND ? AND status = ?",
			restriction.ProviderID,
			utils.DateOnly(restriction.StartDate),
			utils.DateOnly(restriction.EndDate),
			models.StatusConfirmed).
		Find(&bookings).Error; err != nil {
		return false, err
	}

	for i := range bookings {
		if restriction.ConflictsWithTimeRange(bookings[i].BookingDate, bookings[i].StartTime, bookings[i].EndTime) {
			return true, nil
		}
	}
	return false, nil
}
