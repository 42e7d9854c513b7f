package admin

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/models"
	"github.com/meinhoongagan/booking-platform/services"
	"github.com/meinhoongagan/booking-platform/utils"
)

// providerID returns the authenticated admin's user ID; the admin is the
// single provider whose calendar this platform manages.
func providerID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}

// providerBooking fetches one of the provider's own bookings by id; other
// providers' rows read as not found.
func providerBooking(tx *gorm.DB, userID uint, id string, booking *models.Booking) *gorm.DB {
	return tx.Where("provider_id = ?", userID).First(booking, id)
}

// bookingFilters applies the shared status/date/period filters from the
// query string; the list endpoint and the stats use the same set.
func bookingFilters(c *fiber.Ctx, query *gorm.DB) *gorm.DB {
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from_date"); from != "" {
		if fromDate, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("booking_date >= ?", fromDate)
		}
	}
	if to := c.Query("to_date"); to != "" {
		if toDate, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("booking_date <= ?", toDate)
		}
	}

	today := utils.DateOnly(time.Now())
	switch c.Query("period") {
	case "today":
		query = query.Where("booking_date = ?", today)
	case "upcoming":
		query = query.Where("booking_date >= ?", today)
	case "past":
		query = query.Where("booking_date < ?", today)
	case "this_week":
		weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		query = query.Where("booking_date BETWEEN ? AND ?", weekStart, weekStart.AddDate(0, 0, 6))
	}

	return query
}

// GetAllBookings lists the provider's bookings with filters and per-status
// statistics for the same filter set.
func GetAllBookings(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	query := bookingFilters(c, db.DB.Where("provider_id = ?", userID))
	if err := query.Order("booking_date asc").Order("start_time asc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	stats := fiber.Map{
		"total":                  len(bookings),
		"pending":                0,
		"confirmed":              0,
		"rejected":               0,
		"cancelled":              0,
		"total_duration_minutes": 0,
	}
	for i := range bookings {
		key := string(bookings[i].Status)
		if count, ok := stats[key].(int); ok {
			stats[key] = count + 1
		}
		stats["total_duration_minutes"] = stats["total_duration_minutes"].(int) + bookings[i].DurationInMinutes()
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"stats":    stats,
	})
}

// GetBooking returns one booking together with its live validation state, so
// the admin sees conflicts that appeared after the request came in.
func GetBooking(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var booking models.Booking
	if err := providerBooking(db.DB, userID, c.Params("id"), &booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	violations, err := services.ValidateBooking(&booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to validate booking",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"booking":           booking,
		"validation_errors": violations,
		"has_conflicts":     len(violations) > 0,
	})
}

// ConfirmBooking transitions a pending booking to confirmed. Confirmation is
// the commit point against double-booking: the booking is re-validated
// inside the transaction that flips its status, so the second of two
// competing pending bookings fails here.
func ConfirmBooking(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var booking models.Booking
	if err := providerBooking(db.DB, userID, c.Params("id"), &booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if !booking.CanBeConfirmed() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only pending bookings can be confirmed",
		})
	}

	var violations []string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		violations, err = services.ValidateBookingTx(tx, &booking)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return fmt.Errorf("booking has conflicts")
		}
		return booking.UpdateStatus(tx, models.StatusConfirmed)
	})
	if err != nil {
		if len(violations) > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":  "Cannot confirm booking",
				"errors": violations,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to confirm booking",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(booking.ProviderID)

	if err := sendBookingConfirmedEmail(&booking); err != nil {
		log.Printf("Failed to send confirmation email for booking %d: %v", booking.ID, err)
	}

	return c.JSON(fiber.Map{
		"booking": booking,
		"message": "Booking confirmed successfully",
	})
}

// RejectBooking transitions a pending booking to rejected.
func RejectBooking(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var booking models.Booking
	if err := providerBooking(db.DB, userID, c.Params("id"), &booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if !booking.CanBeRejected() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only pending bookings can be rejected",
		})
	}

	if err := booking.UpdateStatus(db.DB, models.StatusRejected); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reject booking",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"booking": booking,
		"message": "Booking rejected successfully",
	})
}

// CancelBooking transitions a pending or confirmed booking to cancelled.
func CancelBooking(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var booking models.Booking
	if err := providerBooking(db.DB, userID, c.Params("id"), &booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if !booking.CanBeCancelled() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only pending or confirmed bookings can be cancelled",
		})
	}

	if err := booking.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel booking",
			Error:   err.Error(),
		})
	}

	// A cancelled confirmation frees its slot
	services.InvalidateSlotCache(booking.ProviderID)

	return c.JSON(fiber.Map{
		"booking": booking,
		"message": "Booking cancelled successfully",
	})
}

// DeleteBooking removes a booking entirely.
func DeleteBooking(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var booking models.Booking
	if err := providerBooking(db.DB, userID, c.Params("id"), &booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete booking",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(booking.ProviderID)

	return c.SendStatus(fiber.StatusNoContent)
}

// sendBookingConfirmedEmail notifies the client their booking was approved
func sendBookingConfirmedEmail(booking *models.Booking) error {
	subject := "Booking Confirmed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been confirmed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Booking Team</p>
	`, booking.ClientName, booking.BookingDate.Format("2006-01-02"), booking.TimeRange())

	return utils.SendEmail(booking.ClientEmail, subject, body)
}
