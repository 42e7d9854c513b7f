package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Booking holds the slot generation and booking window settings.
type Booking struct {
	SlotIntervalMinutes int  // how often slots start
	SlotDurationMinutes int  // length of each bookable slot
	MaxWeeksAhead       int  // how many weeks in advance clients can book
	DefaultProviderID   uint // provider used by the public booking page; 0 = first user
}

// LoadBooking reads booking settings from the environment with defaults.
func LoadBooking() *Booking {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return &Booking{
		SlotIntervalMinutes: envInt("BOOKING_SLOT_INTERVAL", 30),
		SlotDurationMinutes: envInt("BOOKING_SLOT_DURATION", 60),
		MaxWeeksAhead:       envInt("BOOKING_MAX_WEEKS_AHEAD", 8),
		DefaultProviderID:   uint(envInt("BOOKING_DEFAULT_PROVIDER_ID", 0)),
	}
}

func envInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, val, fallback)
		return fallback
	}
	return parsed
}
