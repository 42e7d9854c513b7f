package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/booking-platform/controllers/admin"
	"github.com/meinhoongagan/booking-platform/middleware"
)

// SetupAdminRoutes configures the admin routes for bookings, availability
// and restrictions
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireAdmin())

	bookings := group.Group("/bookings")
	bookings.Get("/", admin.GetAllBookings)
	bookings.Get("/:id", admin.GetBooking)
	bookings.Patch("/:id/confirm", admin.ConfirmBooking)
	bookings.Patch("/:id/reject", admin.RejectBooking)
	bookings.Patch("/:id/cancel", admin.CancelBooking)
	bookings.Delete("/:id", admin.DeleteBooking)

	availability := group.Group("/availability")
	availability.Get("/", admin.GetWeeklySchedule)
	availability.Put("/", admin.UpdateWeeklySchedule)
	availability.Patch("/:day/toggle", admin.ToggleDayAvailability)

	restrictions := group.Group("/restrictions")
	restrictions.Get("/", admin.GetAllRestrictions)
	restrictions.Post("/", admin.CreateRestriction)
	restrictions.Patch("/:id", admin.UpdateRestriction)
	restrictions.Delete("/:id", admin.DeleteRestriction)
}
