package services

import (
	"time"

	"github.com/meinhoongagan/booking-platform/models"
)

// SlotStatus is a candidate slot classified as available or not. Reason is
// only set for restriction conflicts; booking conflicts carry no reason.
type SlotStatus struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckSlot classifies one candidate slot against the day's restrictions and
// confirmed bookings. Restrictions are checked first: they are authoritative
// and explain why the slot is blocked, while a booking conflict is
// self-evident to the caller.
func CheckSlot(slot TimeSlot, date time.Time, restrictions []models.Restriction, bookings []models.Booking) SlotStatus {
	for i := range restrictions {
		if restrictions[i].ConflictsWithTimeRange(date, slot.StartTime, slot.EndTime) {
			return SlotStatus{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Available: false,
				Reason:    restrictions[i].DisplayReason(),
			}
		}
	}

	for i := range bookings {
		// Only confirmed bookings block a slot; pending requests do not
		// stop other clients from requesting the same time
		if bookings[i].Status != models.StatusConfirmed {
			continue
		}
		if bookings[i].Overlaps(slot.StartTime, slot.EndTime) {
			return SlotStatus{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Available: false,
			}
		}
	}

	return SlotStatus{
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Available: true,
	}
}

// CheckSlots classifies every candidate slot, preserving order.
func CheckSlots(slots []TimeSlot, date time.Time, restrictions []models.Restriction, bookings []models.Booking) []SlotStatus {
	statuses := make([]SlotStatus, 0, len(slots))
	for _, slot := range slots {
		statuses = append(statuses, CheckSlot(slot, date, restrictions, bookings))
	}
	return statuses
}

// FilterAvailable keeps only the available slots, preserving order.
func FilterAvailable(slots []SlotStatus) []SlotStatus {
	available := []SlotStatus{}
	for _, slot := range slots {
		if slot.Available {
			available = append(available, slot)
		}
	}
	return available
}
