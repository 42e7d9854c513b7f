package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/booking-platform/config"
	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/models"
	"github.com/meinhoongagan/booking-platform/services"
	"github.com/meinhoongagan/booking-platform/utils"
)

var (
	bookingCfg      *config.Booking
	availabilitySvc *services.AvailabilityService
)

func availabilityService() *services.AvailabilityService {
	if availabilitySvc == nil {
		bookingCfg = config.LoadBooking()
		availabilitySvc = services.NewAvailabilityService(bookingCfg)
	}
	return availabilitySvc
}

// defaultProvider resolves the provider the public booking page books
// against: the configured user, or the first user in the database.
func defaultProvider() (*models.User, error) {
	availabilityService()

	var user models.User
	if bookingCfg.DefaultProviderID != 0 {
		if err := db.DB.First(&user, bookingCfg.DefaultProviderID).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err := db.DB.Order("id").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := utils.DateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// GetBookingSlots returns the classified slots for one week of the booking
// calendar. ?week=N picks the week (1 = current), bounded by the configured
// horizon; ?debug=true includes unavailable slots with their reasons.
func GetBookingSlots(c *fiber.Ctx) error {
	svc := availabilityService()

	maxWeeks := svc.MaxWeeksAhead()
	week := c.QueryInt("week", 1)
	if week < 1 || week > maxWeeks {
		week = 1
	}
	debugMode := c.QueryBool("debug", false)

	provider, err := defaultProvider()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Service not available. Please contact administrator.",
			Error:   err.Error(),
		})
	}

	startDate := startOfWeek(time.Now()).AddDate(0, 0, 7*(week-1))

	slots, err := svc.GetAvailableSlotsForWeek(provider.ID, startDate, debugMode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve available slots",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"available_slots": slots,
		"current_week":    week,
		"max_weeks":       maxWeeks,
		"debug_mode":      debugMode,
	})
}

// CreateBooking accepts a booking request from the public form. The booking
// is validated against availability, restrictions and confirmed bookings and
// stored as pending; confirmation happens later through the admin.
func CreateBooking(c *fiber.Ctx) error {
	type BookingInput struct {
		ClientName  string `json:"client_name"`
		ClientEmail string `json:"client_email"`
		ClientPhone string `json:"client_phone"`
		BookingDate string `json:"booking_date"`
		StartTime   string `json:"start_time"`
		EndTime     string `json:"end_time"`
		Notes       string `json:"notes"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.ClientName == "" || input.ClientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Client name and email are required",
		})
	}

	bookingDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking date, expected YYYY-MM-DD",
		})
	}
	if bookingDate.Before(utils.DateOnly(time.Now())) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Booking date must be today or later",
		})
	}

	if _, err := utils.ParseClock(input.StartTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid start time, expected HH:MM",
		})
	}
	if _, err := utils.ParseClock(input.EndTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid end time, expected HH:MM",
		})
	}
	if input.EndTime <= input.StartTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "End time must be after start time",
		})
	}

	provider, err := defaultProvider()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(utils.ErrorResponse{
			Message: "Service not available. Please contact administrator.",
			Error:   err.Error(),
		})
	}

	booking := models.Booking{
		ProviderID:  provider.ID,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		BookingDate: bookingDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Notes:       input.Notes,
		Status:      models.StatusPending,
	}

	violations, err := services.ValidateBooking(&booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to validate booking",
			Error:   err.Error(),
		})
	}
	if len(violations) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": violations,
		})
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(provider.ID)

	// Best effort; the booking stands even if the mail bounces
	if err := sendBookingReceivedEmail(&booking); err != nil {
		log.Printf("Failed to send booking received email for booking %d: %v", booking.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking": booking,
		"message": "Your booking request has been submitted. You will receive a confirmation email once it is approved.",
	})
}

// sendBookingReceivedEmail acknowledges a new pending booking request
func sendBookingReceivedEmail(booking *models.Booking) error {
	subject := "Booking Request Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your booking request.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>You will receive a confirmation email once your request is approved.</p>
		<p>Best regards,</p>
		<p>Your Booking Team</p>
	`, booking.ClientName, booking.BookingDate.Format("2006-01-02"), booking.TimeRange())

	return utils.SendEmail(booking.ClientEmail, subject, body)
}
