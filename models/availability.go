package models

import (
	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/utils"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// DayNames returns the day-of-week to name mapping (0 = Sunday).
func DayNames() []string {
	return dayNames[:]
}

// Availability is one recurring weekly window of bookable time. A provider
// has at most one row per day of week.
type Availability struct {
	gorm.Model
	ProviderID uint      `json:"provider_id" gorm:"uniqueIndex:idx_provider_day"`
	Provider   User      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	DayOfWeek  DayOfWeek `json:"day_of_week" gorm:"uniqueIndex:idx_provider_day"`
	StartTime  string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime    string    `json:"end_time"`   // Format "HH:MM" in 24h
	IsActive   bool      `json:"is_active" gorm:"default:true"`
}

// DayName returns the name of this availability's day of week.
func (a *Availability) DayName() string {
	if a.DayOfWeek < 0 || int(a.DayOfWeek) >= len(dayNames) {
		return ""
	}
	return dayNames[a.DayOfWeek]
}

// CoversTimeRange reports whether the given time range falls entirely within
// this availability window.
func (a *Availability) CoversTimeRange(startTime, endTime string) bool {
	return a.StartTime <= startTime && a.EndTime >= endTime
}

// DurationInMinutes returns the window length in minutes.
func (a *Availability) DurationInMinutes() int {
	minutes, err := utils.ClockDuration(a.StartTime, a.EndTime)
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}
