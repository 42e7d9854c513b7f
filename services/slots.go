package services

import (
	"fmt"

	"github.com/meinhoongagan/booking-platform/utils"
)

// TimeSlot is a candidate bookable interval. Times are half-open wall-clock
// "HH:MM" values: a slot ending 11:00 does not overlap one starting 11:00.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GenerateTimeSlots produces the ordered candidate slots inside an
// availability window. Starting at startTime, a slot of durationMinutes is
// emitted whenever it still fits before endTime, then the cursor advances by
// intervalMinutes. Returns an empty list when the duration exceeds the
// window.
func GenerateTimeSlots(startTime, endTime string, intervalMinutes, durationMinutes int) ([]TimeSlot, error) {
	if intervalMinutes <= 0 || durationMinutes <= 0 {
		return nil, fmt.Errorf("slot interval and duration must be positive, got %d and %d", intervalMinutes, durationMinutes)
	}

	start, err := utils.ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return nil, err
	}

	slots := []TimeSlot{}
	for current := start; current+durationMinutes <= end; current += intervalMinutes {
		slots = append(slots, TimeSlot{
			StartTime: utils.FormatClock(current),
			EndTime:   utils.FormatClock(current + durationMinutes),
		})
	}
	return slots, nil
}
