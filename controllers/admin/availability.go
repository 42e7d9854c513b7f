package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/models"
	"github.com/meinhoongagan/booking-platform/services"
	"github.com/meinhoongagan/booking-platform/utils"
)

// Weekly schedule is presented Monday-first with Sunday at the end.
var scheduleDayOrder = []models.DayOfWeek{
	models.Monday, models.Tuesday, models.Wednesday, models.Thursday,
	models.Friday, models.Saturday, models.Sunday,
}

// GetWeeklySchedule returns the provider's full week, one entry per day with
// an inactive placeholder for days that have no availability row yet.
func GetWeeklySchedule(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var availabilities []models.Availability
	if err := db.DB.Where("provider_id = ?", userID).Find(&availabilities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availabilities",
			Error:   err.Error(),
		})
	}

	byDay := make(map[models.DayOfWeek]*models.Availability, len(availabilities))
	for i := range availabilities {
		byDay[availabilities[i].DayOfWeek] = &availabilities[i]
	}

	dayNames := models.DayNames()
	schedule := make([]fiber.Map, 0, 7)
	for _, day := range scheduleDayOrder {
		if availability, ok := byDay[day]; ok {
			schedule = append(schedule, fiber.Map{
				"id":          availability.ID,
				"day_of_week": availability.DayOfWeek,
				"day_name":    availability.DayName(),
				"start_time":  availability.StartTime,
				"end_time":    availability.EndTime,
				"is_active":   availability.IsActive,
			})
			continue
		}
		schedule = append(schedule, fiber.Map{
			"id":          nil,
			"day_of_week": day,
			"day_name":    dayNames[day],
			"start_time":  nil,
			"end_time":    nil,
			"is_active":   false,
		})
	}

	return c.JSON(fiber.Map{"schedule": schedule})
}

// UpdateWeeklySchedule upserts availability windows for the given days.
func UpdateWeeklySchedule(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type DayInput struct {
		DayOfWeek models.DayOfWeek `json:"day_of_week"`
		StartTime string           `json:"start_time"`
		EndTime   string           `json:"end_time"`
		IsActive  bool             `json:"is_active"`
	}
	type ScheduleInput struct {
		Days []DayInput `json:"days"`
	}

	input := new(ScheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	for _, day := range input.Days {
		if day.DayOfWeek < models.Sunday || day.DayOfWeek > models.Saturday {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Day of week must be between 0 and 6",
			})
		}
		if _, err := utils.ParseClock(day.StartTime); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid start time, expected HH:MM",
			})
		}
		if _, err := utils.ParseClock(day.EndTime); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid end time, expected HH:MM",
			})
		}
		if day.EndTime <= day.StartTime {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "End time must be after start time",
			})
		}
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, day := range input.Days {
			var availability models.Availability
			err := tx.Where("provider_id = ? AND day_of_week = ?", userID, day.DayOfWeek).First(&availability).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				availability = models.Availability{
					ProviderID: userID,
					DayOfWeek:  day.DayOfWeek,
				}
			} else if err != nil {
				return err
			}

			availability.StartTime = day.StartTime
			availability.EndTime = day.EndTime
			availability.IsActive = day.IsActive
			if err := tx.Save(&availability).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update schedule",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(userID)

	return c.JSON(fiber.Map{"message": "Schedule updated successfully"})
}

// ToggleDayAvailability flips one day's active flag without touching its
// times, so a day can be paused and resumed.
func ToggleDayAvailability(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	day, err := c.ParamsInt("day")
	if err != nil || day < int(models.Sunday) || day > int(models.Saturday) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Day of week must be between 0 and 6",
		})
	}

	var availability models.Availability
	if err := db.DB.Where("provider_id = ? AND day_of_week = ?", userID, day).First(&availability).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No availability configured for this day",
		})
	}

	availability.IsActive = !availability.IsActive
	if err := db.DB.Save(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to toggle availability",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(userID)

	return c.JSON(fiber.Map{"availability": availability})
}
