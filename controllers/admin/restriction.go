package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/booking-platform/db"
	"github.com/meinhoongagan/booking-platform/models"
	"github.com/meinhoongagan/booking-platform/services"
	"github.com/meinhoongagan/booking-platform/utils"
)

type restrictionInput struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Reason    string  `json:"reason"`
	Type      string  `json:"type"`
}

// parseRestriction validates the request body and fills the model. Both
// times set means partial-day, both nil means all-day; mixing is rejected.
func parseRestriction(input *restrictionInput, restriction *models.Restriction) *fiber.Map {
	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return &fiber.Map{"error": "Invalid start date, expected YYYY-MM-DD"}
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return &fiber.Map{"error": "Invalid end date, expected YYYY-MM-DD"}
	}
	if endDate.Before(startDate) {
		return &fiber.Map{"error": "End date must be on or after start date"}
	}

	if (input.StartTime == nil) != (input.EndTime == nil) {
		return &fiber.Map{"error": "Start and end time must both be set or both be empty"}
	}
	if input.StartTime != nil {
		if _, err := utils.ParseClock(*input.StartTime); err != nil {
			return &fiber.Map{"error": "Invalid start time, expected HH:MM"}
		}
		if _, err := utils.ParseClock(*input.EndTime); err != nil {
			return &fiber.Map{"error": "Invalid end time, expected HH:MM"}
		}
		if *input.EndTime <= *input.StartTime {
			return &fiber.Map{"error": "End time must be after start time"}
		}
	}

	if input.Type != "" {
		if _, ok := models.RestrictionTypes()[input.Type]; !ok {
			return &fiber.Map{"error": "Unknown restriction type"}
		}
		restriction.Type = input.Type
	} else {
		restriction.Type = models.RestrictionOther
	}

	restriction.StartDate = startDate
	restriction.EndDate = endDate
	restriction.StartTime = input.StartTime
	restriction.EndTime = input.EndTime
	restriction.Reason = input.Reason
	return nil
}

// GetAllRestrictions lists the provider's restrictions with optional type
// and date-range filters.
func GetAllRestrictions(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	query := db.DB.Where("provider_id = ?", userID)
	if restrictionType := c.Query("type"); restrictionType != "" {
		query = query.Where("type = ?", restrictionType)
	}
	if from := c.Query("from_date"); from != "" {
		if fromDate, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("end_date >= ?", fromDate)
		}
	}
	if to := c.Query("to_date"); to != "" {
		if toDate, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("start_date <= ?", toDate)
		}
	}

	var restrictions []models.Restriction
	if err := query.Order("start_date asc").Order("start_time asc").Find(&restrictions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch restrictions",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"restrictions": restrictions,
		"types":        models.RestrictionTypes(),
	})
}

// CreateRestriction adds a restriction, refusing one that would land on an
// existing confirmed booking.
func CreateRestriction(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(restrictionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	restriction := models.Restriction{ProviderID: userID}
	if errMap := parseRestriction(input, &restriction); errMap != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errMap)
	}

	covers, err := services.RestrictionCoversConfirmedBooking(&restriction)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check booking conflicts",
			Error:   err.Error(),
		})
	}
	if covers {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Restriction overlaps an existing confirmed booking",
		})
	}

	if err := db.DB.Create(&restriction).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create restriction",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(userID)

	return c.Status(fiber.StatusCreated).JSON(restriction)
}

// UpdateRestriction edits a restriction under the same confirmed-booking
// conflict rule as creation.
func UpdateRestriction(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var restriction models.Restriction
	if err := db.DB.Where("provider_id = ?", userID).First(&restriction, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restriction not found",
			Error:   err.Error(),
		})
	}

	input := new(restrictionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if errMap := parseRestriction(input, &restriction); errMap != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errMap)
	}

	covers, err := services.RestrictionCoversConfirmedBooking(&restriction)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check booking conflicts",
			Error:   err.Error(),
		})
	}
	if covers {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Restriction overlaps an existing confirmed booking",
		})
	}

	if err := db.DB.Save(&restriction).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update restriction",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(userID)

	return c.JSON(restriction)
}

// DeleteRestriction removes a restriction.
func DeleteRestriction(c *fiber.Ctx) error {
	userID, ok := providerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var restriction models.Restriction
	if err := db.DB.Where("provider_id = ?", userID).First(&restriction, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restriction not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&restriction).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete restriction",
			Error:   err.Error(),
		})
	}

	services.InvalidateSlotCache(userID)

	return c.SendStatus(fiber.StatusNoContent)
}
