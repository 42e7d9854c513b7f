package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/booking-platform/controllers"
)

// SetupBookingRoutes configures the public booking routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/booking")
	booking.Get("/slots", controllers.GetBookingSlots)
	booking.Post("/", controllers.CreateBooking)
}
