package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/config"
	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/models"
	"github.com/meinhoongagan/booking-platform/utils"
)

const dateLayout = "2006-01-02"

// DaySlots holds one calendar day's classified slots.
type DaySlots struct {
	Date  string       `json:"date"`
	Slots []SlotStatus `json:"slots"`
}

// AvailabilityService resolves a provider's bookable slots from their weekly
// availability, date-bound restrictions and confirmed bookings.
type AvailabilityService struct {
	cfg *config.Booking
}

func NewAvailabilityService(cfg *config.Booking) *AvailabilityService {
	return &AvailabilityService{cfg: cfg}
}

// MaxWeeksAhead returns the configured booking horizon in weeks.
func (s *AvailabilityService) MaxWeeksAhead() int {
	return s.cfg.MaxWeeksAhead
}

// GetAvailableSlotsForDate returns the classified slots for one date. A date
// with no active availability window yields an empty list. When
// showUnavailable is false, blocked slots are filtered out.
func (s *AvailabilityService) GetAvailableSlotsForDate(providerID uint, date time.Time, showUnavailable bool) ([]SlotStatus, error) {
	day := utils.DateOnly(date)

	var availability models.Availability
	err := db.DB.
		Where("provider_id = ? AND day_of_week = ? AND is_active = ?", providerID, int(day.Weekday()), true).
		First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []SlotStatus{}, nil
		}
		return nil, err
	}

	var restrictions []models.Restriction
	if err := db.DB.
		Where("provider_id = ? AND start_date <= ? AND end_date >= ?", providerID, day, day).
		Find(&restrictions).Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := db.DB.
		Where("provider_id = ? AND booking_date = ? AND status = ?", providerID, day, models.StatusConfirmed).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return s.buildDaySlots(&availability, day, restrictions, bookings, showUnavailable)
}

// GetAvailableSlotsForWeek returns classified slots for the 7 days starting
// at startOfWeek. Availabilities, restrictions and confirmed bookings are
// loaded in three batched queries and partitioned in memory, so results are
// identical to seven GetAvailableSlotsForDate calls.
func (s *AvailabilityService) GetAvailableSlotsForWeek(providerID uint, startOfWeek time.Time, showUnavailable bool) ([]DaySlots, error) {
	weekStart := utils.DateOnly(startOfWeek)

	if week, ok := s.cachedWeek(providerID, weekStart, showUnavailable); ok {
		return week, nil
	}

	weekEnd := weekStart.AddDate(0, 0, 6)

	var availabilities []models.Availability
	if err := db.DB.
		Where("provider_id = ? AND is_active = ?", providerID, true).
		Find(&availabilities).Error; err != nil {
		return nil, err
	}

	var restrictions []models.Restriction
	if err := db.DB.
		Where("provider_id = ? AND start_date <= ? AND end_date >= ?", providerID, weekEnd, weekStart).
		Find(&restrictions).Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := db.DB.
		Where("provider_id = ? AND booking_date BETWEEN ? AND ? AND status = ?", providerID, weekStart, weekEnd, models.StatusConfirmed).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	week, err := s.resolveWeek(weekStart, availabilities, restrictions, bookings, showUnavailable, time.Now())
	if err != nil {
		return nil, err
	}

	s.storeWeek(providerID, weekStart, showUnavailable, week)
	return week, nil
}

// resolveWeek partitions the batched rows per day and delegates each day to
// the shared per-day core.
func (s *AvailabilityService) resolveWeek(
	weekStart time.Time,
	availabilities []models.Availability,
	restrictions []models.Restriction,
	bookings []models.Booking,
	showUnavailable bool,
	now time.Time,
) ([]DaySlots, error) {
	availabilityByDay := make(map[models.DayOfWeek]*models.Availability, len(availabilities))
	for i := range availabilities {
		availabilityByDay[availabilities[i].DayOfWeek] = &availabilities[i]
	}

	bookingsByDate := make(map[string][]models.Booking, len(bookings))
	for _, booking := range bookings {
		key := booking.BookingDate.Format(dateLayout)
		bookingsByDate[key] = append(bookingsByDate[key], booking)
	}

	today := utils.DateOnly(now)
	week := make([]DaySlots, 0, 7)

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)

		// Past dates are never bookable; skip the per-day work entirely.
		if date.Before(today) {
			week = append(week, DaySlots{Date: date.Format(dateLayout), Slots: []SlotStatus{}})
			continue
		}

		slots, err := s.buildDaySlots(
			availabilityByDay[models.DayOfWeek(date.Weekday())],
			date,
			restrictionsForDate(restrictions, date),
			bookingsByDate[date.Format(dateLayout)],
			showUnavailable,
		)
		if err != nil {
			return nil, err
		}
		week = append(week, DaySlots{Date: date.Format(dateLayout), Slots: slots})
	}

	return week, nil
}

// buildDaySlots is the per-day resolution core shared by the date and week
// paths: generate candidates from the window, classify them, optionally
// filter to available-only.
func (s *AvailabilityService) buildDaySlots(
	availability *models.Availability,
	date time.Time,
	restrictions []models.Restriction,
	bookings []models.Booking,
	showUnavailable bool,
) ([]SlotStatus, error) {
	if availability == nil || !availability.IsActive {
		return []SlotStatus{}, nil
	}

	slots, err := GenerateTimeSlots(
		availability.StartTime,
		availability.EndTime,
		s.cfg.SlotIntervalMinutes,
		s.cfg.SlotDurationMinutes,
	)
	if err != nil {
		return nil, err
	}

	statuses := CheckSlots(slots, date, restrictions, bookings)
	if !showUnavailable {
		statuses = FilterAvailable(statuses)
	}
	return statuses, nil
}

func restrictionsForDate(restrictions []models.Restriction, date time.Time) []models.Restriction {
	matched := []models.Restriction{}
	for i := range restrictions {
		if restrictions[i].AffectsDate(date) {
			matched = append(matched, restrictions[i])
		}
	}
	return matched
}
