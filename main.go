package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meinhoongagan/booking-platform/cron"
	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/redis"
	"github.com/meinhoongagan/booking-platform/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Booking platform is running")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
