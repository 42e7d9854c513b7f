package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/utils"
)

const (
	RestrictionHoliday     = "holiday"
	RestrictionBreak       = "break"
	RestrictionMeeting     = "meeting"
	RestrictionPersonal    = "personal"
	RestrictionMaintenance = "maintenance"
	RestrictionOther       = "other"
)

var restrictionTypes = map[string]string{
	RestrictionHoliday:     "Holiday",
	RestrictionBreak:       "Break",
	RestrictionMeeting:     "Meeting",
	RestrictionPersonal:    "Personal",
	RestrictionMaintenance: "Maintenance",
	RestrictionOther:       "Other",
}

// RestrictionTypes returns the type to display label mapping.
func RestrictionTypes() map[string]string {
	return restrictionTypes
}

// Restriction is a date-ranged block that overrides availability, such as a
// holiday or a lunch break. StartTime and EndTime are either both set
// (partial-day) or both nil (all-day).
type Restriction struct {
	gorm.Model
	ProviderID uint      `json:"provider_id"`
	Provider   User      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	StartDate  time.Time `json:"start_date" gorm:"type:date"`
	EndDate    time.Time `json:"end_date" gorm:"type:date"` // inclusive
	StartTime  *string   `json:"start_time"`                // Format "HH:MM", nil for all-day
	EndTime    *string   `json:"end_time"`                  // Format "HH:MM", nil for all-day
	Reason     string    `json:"reason"`
	Type       string    `json:"type" gorm:"default:other"`
}

// IsAllDay reports whether this restriction blocks the whole day.
func (r *Restriction) IsAllDay() bool {
	return r.StartTime == nil && r.EndTime == nil
}

// AffectsDate reports whether this restriction's date range includes date.
func (r *Restriction) AffectsDate(date time.Time) bool {
	return utils.DateWithin(date, r.StartDate, r.EndDate)
}

// ConflictsWithTimeRange reports whether this restriction blocks the given
// time range on the given date.
func (r *Restriction) ConflictsWithTimeRange(date time.Time, startTime, endTime string) bool {
	if !r.AffectsDate(date) {
		return false
	}

	// All-day restrictions conflict with any time
	if r.IsAllDay() {
		return true
	}

	return utils.Overlaps(startTime, endTime, *r.StartTime, *r.EndTime)
}

// Label returns the display label for this restriction's type.
func (r *Restriction) Label() string {
	if label, ok := restrictionTypes[r.Type]; ok {
		return label
	}
	return restrictionTypes[RestrictionOther]
}

// DisplayReason returns the free-text reason, falling back to the type label
// when no reason was given.
func (r *Restriction) DisplayReason() string {
	if r.Reason != "" {
		return r.Reason
	}
	return r.Label()
}
