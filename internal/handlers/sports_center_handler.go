package handlers

import (
	"log"

	"bolamarcada/internal/middleware"
	"bolamarcada/internal/models"
	"bolamarcada/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SportsCenterHandler handles HTTP requests for sports centers.
type SportsCenterHandler struct {
	service     *services.SportsCenterService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewSportsCenterHandler creates a new SportsCenterHandler.
func NewSportsCenterHandler(service *services.SportsCenterService, authService *services.AuthService) *SportsCenterHandler {
	return &SportsCenterHandler{
		service:     service,
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the sports center routes with the Fiber app.
// Reads are public, writes require authentication.
func (h *SportsCenterHandler) RegisterRoutes(router fiber.Router) {
	centerRoutes := router.Group("/sports-centers")
	centerRoutes.Get("/", h.HandleGetSportsCenters)
	centerRoutes.Get("/:id", h.HandleGetSportsCenterByID)

	authRequired := middleware.AuthRequired(h.authService)
	centerRoutes.Post("/", authRequired, h.HandleCreateSportsCenter)
	centerRoutes.Patch("/:id", authRequired, h.HandleUpdateSportsCenter)
	centerRoutes.Delete("/:id", authRequired, h.HandleDeleteSportsCenter)
}

// SportsCenterCreateRequest represents the request body for a new sports center.
type SportsCenterCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	CNPJ        string  `json:"cnpj" validate:"required,len=14,numeric"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	PhotoPath   string  `json:"photo_path"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

// HandleCreateSportsCenter creates a sports center owned by the
// authenticated user.
func (h *SportsCenterHandler) HandleCreateSportsCenter(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserContextKey).(*models.User)

	var req SportsCenterCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing sports center request body: %v", err)
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

	center := &models.SportsCenter{
		UserID:      user.ID,
		Name:        req.Name,
		CNPJ:        req.CNPJ,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PhotoPath:   req.PhotoPath,
		Description: req.Description,
	}
	created, err := h.service.CreateSportsCenter(center)
	if err != nil {
		log.Printf("Error creating sports center: %v", err)
		return errorJSON(c, "Could not create sports center", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Sports center created successfully",
		"sports_center": created,
	})
}

// HandleGetSportsCenters retrieves all sports centers.
func (h *SportsCenterHandler) HandleGetSportsCenters(c *fiber.Ctx) error {
	centers, err := h.service.GetAllSportsCenters()
	if err != nil {
		log.Printf("Error getting sports centers: %v", err)
		return errorJSON(c, "Could not retrieve sports centers", err)
	}
	return c.JSON(centers)
}

// HandleGetSportsCenterByID retrieves a single sports center by its ID.
func (h *SportsCenterHandler) HandleGetSportsCenterByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid sports center ID",
		})
	}
	center, err := h.service.GetSportsCenterByID(uint(id))
	if err != nil {
		log.Printf("Error getting sports center %d: %v", id, err)
		return errorJSON(c, "Could not retrieve sports center", err)
	}
	return c.JSON(center)
}

// SportsCenterUpdateRequest represents the request body for an update.
type SportsCenterUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	PhotoPath   *string  `json:"photo_path"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
}

// HandleUpdateSportsCenter updates an existing sports center.
func (h *SportsCenterHandler) HandleUpdateSportsCenter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid sports center ID",
		})
	}

	center, err := h.service.GetSportsCenterByID(uint(id))
	if err != nil {
		return errorJSON(c, "Could not retrieve sports center", err)
	}

	var req SportsCenterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
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

	if req.Name != nil {
		center.Name = *req.Name
	}
	if req.Latitude != nil {
		center.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		center.Longitude = *req.Longitude
	}
	if req.PhotoPath != nil {
		center.PhotoPath = *req.PhotoPath
	}
	if req.Description != nil {
		center.Description = *req.Description
	}

	if err := h.service.UpdateSportsCenter(center); err != nil {
		log.Printf("Error updating sports center %d: %v", id, err)
		return errorJSON(c, "Could not update sports center", err)
	}
	return c.JSON(fiber.Map{
		"message":       "Sports center updated successfully",
		"sports_center": center,
	})
}

// HandleDeleteSportsCenter deletes a sports center by its ID.
func (h *SportsCenterHandler) HandleDeleteSportsCenter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid sports center ID",
		})
	}
	if err := h.service.DeleteSportsCenter(uint(id)); err != nil {
		log.Printf("Error deleting sports center %d: %v", id, err)
		return errorJSON(c, "Could not delete sports center", err)
	}
	return c.JSON(fiber.Map{
		"message": "Sports center deleted successfully",
	})
}
