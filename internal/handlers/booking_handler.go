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

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service     *services.BookingService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService, authService *services.AuthService) *BookingHandler {
	return &BookingHandler{
		service:     service,
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the booking routes with the Fiber app. All of
// them require authentication.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings", middleware.AuthRequired(h.authService))
	bookingRoutes.Post("/", h.HandleCreateBooking)
	bookingRoutes.Get("/", h.HandleGetMyBookings)
	bookingRoutes.Get("/:id", h.HandleGetBookingByID)
	bookingRoutes.Patch("/:id/status", h.HandleUpdateBookingStatus)
	bookingRoutes.Delete("/:id", h.HandleDeleteBooking)
}

// BookingCreateRequest represents the request body for a new booking.
type BookingCreateRequest struct {
	FieldID   uint      `json:"field_id" validate:"required"`
	DayOfWeek int       `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

// HandleCreateBooking reserves a field slot for the authenticated user.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserContextKey).(*models.User)

	var req BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing booking request body: %v", err)
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

	booking := &models.Booking{
		UserID:    user.ID,
		FieldID:   req.FieldID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
	}
	created, err := h.service.CreateBooking(booking)
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		return errorJSON(c, "Could not create booking", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": created,
	})
}

// HandleGetMyBookings retrieves the authenticated user's bookings.
func (h *BookingHandler) HandleGetMyBookings(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserContextKey).(*models.User)
	bookings, err := h.service.GetBookingsByUser(user.ID)
	if err != nil {
		log.Printf("Error getting bookings for user %s: %v", user.ID, err)
		return errorJSON(c, "Could not retrieve bookings", err)
	}
	return c.JSON(bookings)
}

// HandleGetBookingByID retrieves a single booking by its ID.
func (h *BookingHandler) HandleGetBookingByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}
	booking, err := h.service.GetBookingByID(uint(id))
	if err != nil {
		log.Printf("Error getting booking %d: %v", id, err)
		return errorJSON(c, "Could not retrieve booking", err)
	}
	return c.JSON(booking)
}

// BookingStatusRequest represents the request body for a status update.
type BookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateBookingStatus updates the status of an existing booking.
func (h *BookingHandler) HandleUpdateBookingStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}

	var req BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateBookingStatus(uint(id), req.Status); err != nil {
		log.Printf("Error updating status of booking %d: %v", id, err)
		return errorJSON(c, "Could not update booking status", err)
	}
	return c.JSON(fiber.Map{
		"message": "Booking status updated successfully",
	})
}

// HandleDeleteBooking deletes a booking by its ID.
func (h *BookingHandler) HandleDeleteBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking ID",
		})
	}
	if err := h.service.DeleteBooking(uint(id)); err != nil {
		log.Printf("Error deleting booking %d: %v", id, err)
		return errorJSON(c, "Could not delete booking", err)
	}
	return c.JSON(fiber.Map{
		"message": "Booking deleted successfully",
	})
}
