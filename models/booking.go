package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/utils"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingStatuses returns all statuses a booking can hold.
func BookingStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusConfirmed, StatusRejected, StatusCancelled}
}

// Booking is a single client appointment request against a provider's
// published availability.
type Booking struct {
	gorm.Model
	ProviderID  uint          `json:"provider_id"`
	Provider    User          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	ClientPhone string        `json:"client_phone"`
	BookingDate time.Time     `json:"booking_date" gorm:"type:date"`
	StartTime   string        `json:"start_time"` // Format "HH:MM" in 24h
	EndTime     string        `json:"end_time"`   // Format "HH:MM" in 24h
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// UpdateStatus transitions the booking through its status state machine and
// persists the change. Only pending bookings may be confirmed or rejected;
// pending and confirmed bookings may be cancelled.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusRejected && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusRejected, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}

	b.Status = newStatus
	return tx.Save(b).Error
}

// CanBeConfirmed reports whether the booking may transition to confirmed.
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeRejected reports whether the booking may transition to rejected.
func (b *Booking) CanBeRejected() bool {
	return b.Status == StatusPending
}

// CanBeCancelled reports whether the booking may transition to cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsActive reports whether the booking still occupies its slot (pending or
// confirmed).
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps reports whether this booking's time range overlaps the given
// half-open range. Date equality is the caller's concern.
func (b *Booking) Overlaps(startTime, endTime string) bool {
	return utils.Overlaps(startTime, endTime, b.StartTime, b.EndTime)
}

// DurationInMinutes returns the booking length in minutes.
func (b *Booking) DurationInMinutes() int {
	minutes, err := utils.ClockDuration(b.StartTime, b.EndTime)
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}

// TimeRange returns a formatted "HH:MM - HH:MM" range for display.
func (b *Booking) TimeRange() string {
	return b.StartTime + " - " + b.EndTime
}

// StatusColor returns the badge color used by the admin UI.
func (b *Booking) StatusColor() string {
	switch b.Status {
	case StatusPending:
		return "yellow"
	case StatusConfirmed:
		return "green"
	case StatusRejected:
		return "red"
	default:
		return "gray"
	}
}
