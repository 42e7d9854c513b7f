package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/models"
	"github.com/meinhoongagan/booking-platform/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every minute to check for bookings in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders checks for confirmed bookings and sends reminders
func sendBookingReminders() {
	now := time.Now()
	today := utils.DateOnly(now)

	// Look for bookings starting in the next hour
	startWindow := utils.FormatClock((now.Hour()*60 + now.Minute() + 55) % (24 * 60))
	endWindow := utils.FormatClock((now.Hour()*60 + now.Minute() + 65) % (24 * 60))
	if endWindow < startWindow {
		// The window wraps past midnight; skip this run, the next day's runs
		// will pick the bookings up
		return
	}

	var bookings []models.Booking
	err := db.DB.
		Where("status = ? AND booking_date = ? AND start_time BETWEEN ? AND ?",
			models.StatusConfirmed, today, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.ClientEmail)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Booking Team</p>
	`, booking.ClientName, booking.BookingDate.Format("2006-01-02"), booking.TimeRange())

	return utils.SendEmail(booking.ClientEmail, subject, body)
}
