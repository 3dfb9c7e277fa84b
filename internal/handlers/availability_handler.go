package handlers

import (
	"log"
	"time"

	"bolamarcada/internal/middleware"
	"bolamarcada/internal/models"
	"bolamarcada/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AvailabilityHandler handles HTTP requests for availability windows.
type AvailabilityHandler struct {
	service     *services.AvailabilityService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(service *services.AvailabilityService, authService *services.AuthService) *AvailabilityHandler {
	return &AvailabilityHandler{
		service:     service,
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the availability routes with the Fiber app.
func (h *AvailabilityHandler) RegisterRoutes(router fiber.Router) {
	availabilityRoutes := router.Group("/availabilities")
	availabilityRoutes.Get("/", h.HandleGetAvailabilities)
	availabilityRoutes.Get("/:id", h.HandleGetAvailabilityByID)

	authRequired := middleware.AuthRequired(h.authService)
	availabilityRoutes.Post("/", authRequired, h.HandleCreateAvailability)
	availabilityRoutes.Delete("/:id", authRequired, h.HandleDeleteAvailability)
}

// AvailabilityCreateRequest represents the request body for a new
// availability window.
type AvailabilityCreateRequest struct {
	FieldID   uint      `json:"field_id" validate:"required"`
	DayOfWeek int       `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// HandleCreateAvailability creates a new availability window for a field.
func (h *AvailabilityHandler) HandleCreateAvailability(c *fiber.Ctx) error {
	var req AvailabilityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing availability request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	availability := &models.Availability{
		FieldID:   req.FieldID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	created, err := h.service.CreateAvailability(availability)
	if err != nil {
		log.Printf("Error creating availability: %v", err)
		return errorJSON(c, "Could not create availability", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Availability created successfully",
		"availability": created,
	})
}

// HandleGetAvailabilities retrieves the availability windows of a field
// given by the field_id query parameter.
func (h *AvailabilityHandler) HandleGetAvailabilities(c *fiber.Ctx) error {
	fieldID := c.QueryInt("field_id")
	if fieldID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "field_id query parameter is required",
		})
	}
	availabilities, err := h.service.GetAvailabilitiesByField(uint(fieldID))
	if err != nil {
		log.Printf("Error getting availabilities for field %d: %v", fieldID, err)
		return errorJSON(c, "Could not retrieve availabilities", err)
	}
	return c.JSON(availabilities)
}

// HandleGetAvailabilityByID retrieves a single availability window.
func (h *AvailabilityHandler) HandleGetAvailabilityByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid availability ID",
		})
	}
	availability, err := h.service.GetAvailabilityByID(uint(id))
	if err != nil {
		log.Printf("Error getting availability %d: %v", id, err)
		return errorJSON(c, "Could not retrieve availability", err)
	}
	return c.JSON(availability)
}

// HandleDeleteAvailability deletes an availability window by its ID.
func (h *AvailabilityHandler) HandleDeleteAvailability(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid availability ID",
		})
	}
	if err := h.service.DeleteAvailability(uint(id)); err != nil {
		log.Printf("Error deleting availability %d: %v", id, err)
		return errorJSON(c, "Could not delete availability", err)
	}
	return c.JSON(fiber.Map{
		"message": "Availability deleted successfully",
	})
}
